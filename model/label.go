package model

// Label is the structural role of a document item. The vocabulary follows
// what common document-understanding pipelines emit; unknown labels from an
// upstream parser are carried through unchanged.
type Label string

const (
	LabelCaption       Label = "caption"
	LabelCode          Label = "code"
	LabelDocumentIndex Label = "document_index"
	LabelFootnote      Label = "footnote"
	LabelFormula       Label = "formula"
	LabelListItem      Label = "list_item"
	LabelPageFooter    Label = "page_footer"
	LabelPageHeader    Label = "page_header"
	LabelPicture       Label = "picture"
	LabelSectionHeader Label = "section_header"
	LabelTable         Label = "table"
	LabelText          Label = "text"
	LabelTitle         Label = "title"
)

// IsTable reports whether the label names a table-family item, i.e. one
// that carries tabular data.
func (l Label) IsTable() bool {
	return l == LabelTable || l == LabelDocumentIndex
}

// DefaultHeadings is the default set of labels treated as headings for
// nearest-heading lookups.
func DefaultHeadings() []Label {
	return []Label{LabelSectionHeader, LabelPageHeader, LabelTitle}
}
