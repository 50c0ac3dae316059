package loader

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/katalvlaran/critpath/core"
)

// textLine is a non-empty, comment-stripped line with its 1-based number.
type textLine struct {
	no     int
	fields []string
}

func scanText(data []byte) ([]textLine, error) {
	var lines []textLine
	sc := bufio.NewScanner(bytes.NewReader(data))
	for no := 1; sc.Scan(); no++ {
		s := sc.Text()
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		if f := strings.Fields(s); len(f) > 0 {
			lines = append(lines, textLine{no: no, fields: f})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}

	return lines, nil
}

func decodeText(data []byte, o Options) (*core.Graph, error) {
	lines, err := scanText(data)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrInvalidDocument, "missing vertex count")
	}

	// 1. Header: vertex count
	head := lines[0]
	if len(head.fields) != 1 {
		return nil, errors.Wrapf(ErrInvalidDocument, "line %d: want a single vertex count", head.no)
	}
	n, err := strconv.Atoi(head.fields[0])
	if err != nil || n < 0 {
		return nil, errors.Wrapf(ErrInvalidDocument, "line %d: bad vertex count %q", head.no, head.fields[0])
	}
	if len(lines)-1 < n {
		return nil, errors.Wrapf(ErrInvalidDocument, "declared %d vertices, found %d coordinate lines", n, len(lines)-1)
	}

	// 2. Coordinates
	g := core.NewGraph(append([]core.GraphOption{core.WithCapacity(n)}, o.GraphOptions...)...)
	for _, ln := range lines[1 : n+1] {
		if len(ln.fields) < 2 || len(ln.fields) > 3 {
			return nil, errors.Wrapf(ErrInvalidDocument, "line %d: want \"x y [label]\"", ln.no)
		}
		x, errX := strconv.ParseFloat(ln.fields[0], 64)
		y, errY := strconv.ParseFloat(ln.fields[1], 64)
		if errX != nil || errY != nil {
			return nil, errors.Wrapf(ErrInvalidDocument, "line %d: bad coordinate", ln.no)
		}
		label := ""
		if len(ln.fields) == 3 {
			label = ln.fields[2]
		}
		if _, err = g.AddVertex(label, orb.Point{x, y}); err != nil {
			return nil, errors.Wrapf(err, "line %d", ln.no)
		}
	}

	// 3. Adjacency lines
	for _, ln := range lines[n+1:] {
		ids := make([]int, len(ln.fields))
		for i, f := range ln.fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidDocument, "line %d: bad vertex id %q", ln.no, f)
			}
			if !g.HasVertex(id) {
				return nil, errors.Wrapf(ErrUnknownVertex, "line %d: %d not in [0,%d)", ln.no, id, n)
			}
			ids[i] = id
		}
		for _, v := range ids[1:] {
			if err = g.AddEdge(ids[0], v); err != nil {
				return nil, errors.Wrapf(err, "line %d", ln.no)
			}
		}
	}

	return g, nil
}
