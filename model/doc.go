// Package model provides the intermediate representation (IR) for parsed
// document structure and layout geometry.
//
// # Source documents
//
// A [Document] holds the pages and the structural item tree produced by a
// document converter. Each [Node] is one item (paragraph, heading, table,
// list item, ...) with a structural [Label], optional provenance ([Prov])
// and, for table items, a [Table]. Pre-order traversal of the tree via
// [Document.Walk] is the document's reading order.
//
// # Geometry
//
// Upstream parsers report bounding boxes in whichever coordinate origin
// their format uses. [BBox] carries the origin explicitly and
// [BBox.Normalize] converts any box into a canonical top-left-origin
// [Rect] given the page height.
//
// # Layout values
//
// [PageLayout], [SpanLayout] and [DocLayout] are the immutable value types
// attached to aligned token streams and serialized by the codec package.
//
// # Tabular values
//
// A [Frame] is the column-oriented export of a [Table]: ordered columns of
// string cells, with duplicate-name handling via [Frame.DedupColumns].
package model
