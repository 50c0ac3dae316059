// Package loader reads graph documents into a core.Graph.
//
// Supported formats (picked from the file extension unless WithFormat is given):
//
//   - text (.txt, .graph): a vertex count, one "x y [label]" line per vertex,
//     then adjacency lines "u v1 v2 ..." listing successors of u in order.
//     Blank lines and anything after '#' are ignored.
//   - yaml (.yaml, .yml) and json (.json): a Document; checked against an
//     embedded JSON schema before any vertex is created.
//   - hcl (.hcl): an optional `graph { undirected = true }` block and one
//     `vertex "label" { x = .. y = .. next = [..] }` block per vertex.
//   - osm (.osm): OpenStreetMap XML. Nodes become vertices at (lon, lat)
//     labelled with their node ID; consecutive nodes of a way become arcs in
//     both directions unless the way is tagged oneway.
//
// Arcs are added in document order, so successor order (and with it every
// traversal order downstream) follows the file.
//
// Errors:
//
//   - ErrUnknownFormat    extension or Format not recognized
//   - ErrInvalidDocument  syntax error, schema violation or bad field
//   - ErrUnknownVertex    arc target names a vertex the document never declares
//   - core errors         duplicate labels, loops or multi-edges rejected by graph options
package loader
