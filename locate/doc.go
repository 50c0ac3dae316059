// Package locate indexes vertex coordinates of a core.Graph in an R-tree so
// callers can resolve a point to a vertex (nearest neighbour) or list the
// vertices inside a bounding box or radius.
//
// The index is a snapshot: vertices added to the graph after New are not seen.
// Query results are vertex IDs, ordered by distance (Nearest, KNearest) or
// ascending (Within, Radius). Distance ties resolve to the smaller ID.
//
// Complexity: New O(V log V); queries O(log V + k) on well-spread points.
package locate
