package app

import (
	stderrors "errors"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/critpath/bfs"
	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/cpm"
	"github.com/katalvlaran/critpath/dfs"
	"github.com/katalvlaran/critpath/dijkstra"
	"github.com/katalvlaran/critpath/loader"
	"github.com/katalvlaran/critpath/metrics"
	"github.com/katalvlaran/critpath/prim_kruskal"
)

// Operation names used for metrics.
const (
	opLoad     = "load"
	opSchedule = "schedule"
	opMST      = "mst"
	opPath     = "path"
	opReach    = "reach"
)

// Run loads the graph, computes what the mode asks for and renders the report.
func (a *App) Run() error {
	a.logger.Debug("App.Run started")
	cfg := a.config

	// 1. Load
	g, err := a.load()
	if err != nil {
		return err
	}
	st := g.Stats()
	report := &Report{Graph: GraphReport{
		Path:       cfg.GraphPath,
		Vertices:   st.Vertices,
		Arcs:       st.Arcs,
		Sources:    st.Sources,
		Sinks:      st.Sinks,
		Undirected: st.Undirected,
	}}

	// 2. Compute
	all := cfg.Mode == ModeAll
	if all || cfg.Mode == ModeSchedule {
		report.Schedule, err = a.schedule(g)
		if err != nil {
			if !all || !skippable(err) {
				return err
			}
			a.logger.Warn("schedule skipped", zap.Error(err))
		}
	}
	if all || cfg.Mode == ModeMST || cfg.Mode == ModeReach || cfg.Mode == ModePath {
		root, err := a.resolveRoot(g)
		if err != nil {
			return errors.Wrap(err, "root")
		}
		if all || cfg.Mode == ModeMST {
			if report.MST, err = a.spanningTree(g, root); err != nil {
				return err
			}
		}
		if all || cfg.Mode == ModeReach {
			if report.Reach, err = a.reach(g, root); err != nil {
				return err
			}
		}
		if cfg.Target != "" && (all || cfg.Mode == ModePath) {
			if report.Path, err = a.shortestPath(g, root); err != nil {
				return err
			}
		}
	}

	// 3. Render
	if err = render(a.outW, cfg.Output, report); err != nil {
		return err
	}
	if a.registry != nil {
		if err = metrics.WriteText(a.logW, a.registry); err != nil {
			return err
		}
	}
	a.logger.Debug("App.Run finished")

	return nil
}

// skippable reports whether err only means the graph is not schedulable.
func skippable(err error) bool {
	return stderrors.Is(err, cpm.ErrPrecedenceViolation) || stderrors.Is(err, dfs.ErrUndirectedGraph)
}

func (a *App) load() (g *core.Graph, err error) {
	defer func(done func(error)) { done(err) }(a.recorder.Time(opLoad))

	f, err := loader.ParseFormat(a.config.InputFormat)
	if err != nil {
		return nil, err
	}
	g, err = loader.LoadFile(a.config.GraphPath, loader.WithFormat(f))
	if err != nil {
		return nil, errors.Wrap(err, "load graph")
	}
	st := g.Stats()
	a.recorder.ObserveGraph(st)
	a.logger.Info("graph loaded",
		zap.String("path", a.config.GraphPath),
		zap.Int("vertices", st.Vertices),
		zap.Int("arcs", st.Arcs),
		zap.Bool("undirected", st.Undirected))

	return g, nil
}

// view returns the graph MST and reach run on.
func (a *App) view(g *core.Graph) *core.Graph {
	if a.config.Symmetrize && !g.Undirected() {
		return g.Symmetrized()
	}
	return g
}

func (a *App) schedule(g *core.Graph) (rep *ScheduleReport, err error) {
	defer func(done func(error)) { done(err) }(a.recorder.Time(opSchedule))

	s, err := cpm.Compute(g, cpm.WithLogger(a.logger.Named("cpm")))
	if err != nil {
		return nil, errors.Wrap(err, "schedule")
	}
	s.ApplyTo(g)
	out := g.Outputs()

	rep = &ScheduleReport{Horizon: s.Horizon, Vertices: make([]VertexTiming, 0, len(out.TopologicalOrdering))}
	for _, v := range out.TopologicalOrdering {
		rep.Vertices = append(rep.Vertices, VertexTiming{
			Vertex:   g.Label(v),
			Earliest: out.EarliestStart[v],
			Latest:   out.LatestStart[v],
			Slack:    s.Slack(v),
			Critical: s.IsCritical(v),
		})
	}
	rep.CriticalPath = labels(g, s.CriticalPath())
	crit := len(s.Critical())
	a.recorder.SetSchedule(s.Horizon, crit)
	a.logger.Info("schedule computed", zap.Float64("horizon", s.Horizon), zap.Int("critical", crit))

	return rep, nil
}

func (a *App) spanningTree(g *core.Graph, root int) (rep *MSTReport, err error) {
	defer func(done func(error)) { done(err) }(a.recorder.Time(opMST))

	v := a.view(g)
	if a.config.MSTMethod == prim_kruskal.MethodKruskal {
		f, err := prim_kruskal.Kruskal(v)
		if err != nil {
			return nil, errors.Wrap(err, "kruskal")
		}
		rep = &MSTReport{Method: prim_kruskal.MethodKruskal, TotalWeight: f.TotalWeight(), Components: f.Components}
		rep.Edges = treeEdges(g, f.Edges)
	} else {
		t, err := prim_kruskal.Prim(v, root, prim_kruskal.WithLogger(a.logger.Named("prim")))
		if err != nil {
			return nil, errors.Wrap(err, "prim")
		}
		t.ApplyTo(g)
		rep = &MSTReport{
			Method:      prim_kruskal.MethodPrim,
			Root:        g.Label(root),
			TotalWeight: t.TotalWeight(),
			Reached:     t.Size(),
		}
		rep.Edges = treeEdges(g, t.Edges())
	}
	a.recorder.SetTreeWeight(rep.TotalWeight)
	a.logger.Info("spanning tree computed",
		zap.String("method", rep.Method),
		zap.Int("edges", len(rep.Edges)),
		zap.Float64("weight", rep.TotalWeight))

	return rep, nil
}

func (a *App) reach(g *core.Graph, root int) (rep *ReachReport, err error) {
	defer func(done func(error)) { done(err) }(a.recorder.Time(opReach))

	res, err := bfs.BFS(a.view(g), root)
	if err != nil {
		return nil, errors.Wrap(err, "reach")
	}
	rep = &ReachReport{Root: g.Label(root), Order: labels(g, res.Order)}
	for _, v := range res.Order {
		if res.Depth[v] > rep.MaxDepth {
			rep.MaxDepth = res.Depth[v]
		}
	}

	return rep, nil
}

func (a *App) shortestPath(g *core.Graph, root int) (rep *PathReport, err error) {
	defer func(done func(error)) { done(err) }(a.recorder.Time(opPath))

	target, err := resolveVertex(g, a.config.Target)
	if err != nil {
		return nil, errors.Wrap(err, "target")
	}
	res, err := dijkstra.Dijkstra(g, root)
	if err != nil {
		return nil, errors.Wrap(err, "shortest path")
	}
	path, err := res.PathTo(target)
	if err != nil {
		return nil, errors.Wrapf(err, "%s → %s", g.Label(root), g.Label(target))
	}
	a.logger.Info("shortest path computed", zap.Int("hops", len(path)-1), zap.Float64("distance", res.Dist[target]))

	return &PathReport{
		From:     g.Label(root),
		To:       g.Label(target),
		Vertices: labels(g, path),
		Distance: res.Dist[target],
	}, nil
}

func labels(g *core.Graph, ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Label(id)
	}
	return out
}

func treeEdges(g *core.Graph, edges []core.Edge) []TreeEdge {
	out := make([]TreeEdge, len(edges))
	for i, e := range edges {
		out[i] = TreeEdge{From: g.Label(e.From), To: g.Label(e.To), Weight: e.Weight}
	}
	return out
}
