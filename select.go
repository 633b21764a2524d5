package docspan

import "github.com/tsawler/docspan/model"

// input pairs one item's display text with its source node.
type input struct {
	text string
	node *model.Node
}

// selectInputs walks the document tree in reading order and picks out the
// alignable items: table items resolve to their display text, text items
// to their own text, with empty text skipped. Anything else carries no
// alignable content and is ignored. Order is never changed here; it
// defines span order and therefore nearest-heading lookups.
func (l *Layout) selectInputs(d *model.Document) ([]input, error) {
	var inputs []input
	var selErr error
	d.Walk(func(n *model.Node) bool {
		switch {
		case n.Table != nil && n.Label.IsTable():
			text := l.cfg.TablePlaceholder
			if l.cfg.DisplayTable != nil {
				var err error
				text, err = l.cfg.DisplayTable(n.Table.ExportFrame())
				if err != nil {
					selErr = err
					return false
				}
			}
			inputs = append(inputs, input{text: text, node: n})
		case n.Text != "":
			inputs = append(inputs, input{text: n.Text, node: n})
		}
		return true
	})
	if selErr != nil {
		return nil, selErr
	}
	return inputs, nil
}
