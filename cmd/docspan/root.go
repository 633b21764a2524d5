package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/docspan"
)

var (
	separator    string
	outputFormat string
	showPages    bool
)

var rootCmd = &cobra.Command{
	Use:   "docspan",
	Short: "Convert documents into aligned token/span form",
	Long: `Docspan converts a PDF or HTML document into a flat token stream with
layout spans: each structural item (paragraph, heading, table) owns an
exact token range, optionally positioned on its page.

Output formats:
  text      the reconstructed token stream
  markdown  a markdown rendering of the document structure
  json      the full aligned document, layout and tables included`,
}

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert one document and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(
		&separator, "separator", "\n\n", "token inserted between items",
	)
	convertCmd.Flags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, markdown or json",
	)
	convertCmd.Flags().BoolVar(
		&showPages, "pages", false, "print a per-page span summary to stderr",
	)

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := docspan.DefaultConfig()
	cfg.Separator = separator

	layout := docspan.New(cfg)
	doc, err := layout.ConvertFile(args[0])
	if err != nil {
		return fmt.Errorf("converting %s: %w", args[0], err)
	}
	if len(doc.Warnings) > 0 {
		fmt.Fprintln(os.Stderr, docspan.FormatWarnings(doc.Warnings))
	}
	if showPages {
		for _, ps := range doc.Pages() {
			fmt.Fprintf(os.Stderr, "page %d: %d spans\n", ps.Page.PageNo, len(ps.Spans))
		}
	}

	switch outputFormat {
	case "text":
		fmt.Println(doc.Text())
	case "markdown":
		fmt.Println(doc.Markdown)
	case "json":
		data, err := layout.MarshalDoc(doc)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", args[0], err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
	return nil
}
