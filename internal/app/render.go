package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// render writes r to w in the configured output format.
func render(w io.Writer, format string, r *Report) error {
	switch format {
	case OutputJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return errors.WithStack(err)
	case OutputYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		_, err = w.Write(b)
		return errors.WithStack(err)
	default:
		return renderText(w, r)
	}
}

func renderText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	g := r.Graph
	fmt.Fprintf(tw, "graph %s: %d vertices, %d arcs, %d sources, %d sinks", g.Path, g.Vertices, g.Arcs, g.Sources, g.Sinks)
	if g.Undirected {
		fmt.Fprint(tw, " (undirected)")
	}
	fmt.Fprintln(tw)

	if s := r.Schedule; s != nil {
		fmt.Fprintf(tw, "\nschedule: horizon %.3f\n", s.Horizon)
		fmt.Fprintln(tw, "vertex\tearliest\tlatest\tslack\t")
		for _, v := range s.Vertices {
			mark := ""
			if v.Critical {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%s\n", v.Vertex, v.Earliest, v.Latest, v.Slack, mark)
		}
		fmt.Fprintf(tw, "critical path: %s\n", strings.Join(s.CriticalPath, " → "))
	}

	if m := r.MST; m != nil {
		fmt.Fprintf(tw, "\nmst (%s): total %.3f", m.Method, m.TotalWeight)
		if m.Root != "" {
			fmt.Fprintf(tw, ", root %s, %d reached", m.Root, m.Reached)
		}
		if m.Components > 0 {
			fmt.Fprintf(tw, ", %d components", m.Components)
		}
		fmt.Fprintln(tw)
		for _, e := range m.Edges {
			fmt.Fprintf(tw, "%s\t%s\t%.3f\n", e.From, e.To, e.Weight)
		}
	}

	if p := r.Path; p != nil {
		fmt.Fprintf(tw, "\npath %s → %s: %.3f\n%s\n", p.From, p.To, p.Distance, strings.Join(p.Vertices, " → "))
	}

	if rr := r.Reach; rr != nil {
		fmt.Fprintf(tw, "\nreach from %s: %d vertices, depth %d\n%s\n",
			rr.Root, len(rr.Order), rr.MaxDepth, strings.Join(rr.Order, " "))
	}

	return errors.WithStack(tw.Flush())
}
