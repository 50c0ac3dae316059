package loader

import (
	"encoding/xml"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"

	"github.com/katalvlaran/critpath/core"
)

// wayDirections returns (forward, backward) from a way's oneway tag.
func wayDirections(tags osm.Tags) (forward, backward bool) {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return true, false
	case "-1", "reverse":
		return false, true
	default:
		return true, true
	}
}

func decodeOSM(data []byte, o Options) (*core.Graph, error) {
	var doc osm.OSM
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrInvalidDocument, "xml: %v", err)
	}

	// 1. Nodes become vertices in document order
	g := core.NewGraph(append([]core.GraphOption{core.WithCapacity(len(doc.Nodes))}, o.GraphOptions...)...)
	ids := make(map[osm.NodeID]int, len(doc.Nodes))
	for _, n := range doc.Nodes {
		id, err := g.AddVertex(strconv.FormatInt(int64(n.ID), 10), orb.Point{n.Lon, n.Lat})
		if err != nil {
			return nil, errors.Wrapf(err, "node %d", n.ID)
		}
		ids[n.ID] = id
	}

	// 2. Consecutive way nodes become arcs
	addArc := func(w osm.WayID, u, v int) error {
		if g.HasEdge(u, v) {
			return nil
		}
		return errors.Wrapf(g.AddEdge(u, v), "way %d", w)
	}
	for _, w := range doc.Ways {
		for i := 1; i < len(w.Nodes); i++ {
			a, okA := ids[w.Nodes[i-1].ID]
			b, okB := ids[w.Nodes[i].ID]
			if !okA || !okB {
				return nil, errors.Wrapf(ErrUnknownVertex, "way %d references a missing node", w.ID)
			}
			if a == b {
				continue
			}
			fwd, bwd := wayDirections(w.Tags)
			if g.Undirected() {
				// core mirrors the arc; direction tags carry no information.
				fwd, bwd = true, false
			}
			if fwd {
				if err := addArc(w.ID, a, b); err != nil {
					return nil, err
				}
			}
			if bwd {
				if err := addArc(w.ID, b, a); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
