package convert

// Document is the structured result produced by a conversion backend. The
// backend's internal representation (layout, tables, OCR output) is opaque to
// the service; the only export surface is markdown.
type Document struct {
	markdown string
	source   string
}

// NewDocument creates a Document holding the given markdown, tagged with the
// source path it was converted from.
func NewDocument(markdown, source string) *Document {
	return &Document{markdown: markdown, source: source}
}

// ExportToMarkdown returns the document content serialized as markdown.
func (d *Document) ExportToMarkdown() string {
	return d.markdown
}

// Source returns the path the document was converted from.
func (d *Document) Source() string {
	return d.source
}
