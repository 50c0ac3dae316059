package app

// Report is everything one run computed. Sections not requested by the
// mode are nil and omitted from JSON/YAML output.
type Report struct {
	Graph    GraphReport     `json:"graph"`
	Schedule *ScheduleReport `json:"schedule,omitempty"`
	MST      *MSTReport      `json:"mst,omitempty"`
	Path     *PathReport     `json:"path,omitempty"`
	Reach    *ReachReport    `json:"reach,omitempty"`
}

// GraphReport summarizes the loaded graph.
type GraphReport struct {
	Path       string `json:"path"`
	Vertices   int    `json:"vertices"`
	Arcs       int    `json:"arcs"`
	Sources    int    `json:"sources"`
	Sinks      int    `json:"sinks"`
	Undirected bool   `json:"undirected"`
}

// VertexTiming is one row of a schedule.
type VertexTiming struct {
	Vertex   string  `json:"vertex"`
	Earliest float64 `json:"earliest"`
	Latest   float64 `json:"latest"`
	Slack    float64 `json:"slack"`
	Critical bool    `json:"critical"`
}

// ScheduleReport is the critical-path schedule. Vertices are listed in
// topological order.
type ScheduleReport struct {
	Horizon      float64        `json:"horizon"`
	Vertices     []VertexTiming `json:"vertices"`
	CriticalPath []string       `json:"criticalPath"`
}

// TreeEdge is one spanning tree edge.
type TreeEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// MSTReport is a minimum spanning tree (Prim) or forest (Kruskal).
type MSTReport struct {
	Method      string     `json:"method"`
	Root        string     `json:"root,omitempty"`
	Edges       []TreeEdge `json:"edges"`
	TotalWeight float64    `json:"totalWeight"`
	Reached     int        `json:"reached,omitempty"`
	Components  int        `json:"components,omitempty"`
}

// PathReport is a shortest path.
type PathReport struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Vertices []string `json:"vertices"`
	Distance float64  `json:"distance"`
}

// ReachReport lists vertices reachable from a root in breadth-first order.
type ReachReport struct {
	Root     string   `json:"root"`
	Order    []string `json:"order"`
	MaxDepth int      `json:"maxDepth"`
}
