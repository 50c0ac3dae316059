package loader

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/critpath/core"
)

// Document is the YAML/JSON form of a graph. HCL documents decode into the
// same shape.
type Document struct {
	Undirected bool             `json:"undirected,omitempty"`
	Vertices   []VertexDocument `json:"vertices"`
}

// VertexDocument declares one vertex and its successors, by label.
type VertexDocument struct {
	Label string   `json:"label"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Next  []string `json:"next,omitempty"`
}

// documentSchema constrains Document before conversion.
const documentSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["vertices"],
  "properties": {
    "undirected": {"type": "boolean"},
    "vertices": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["label", "x", "y"],
        "properties": {
          "label": {"type": "string", "minLength": 1},
          "x": {"type": "number"},
          "y": {"type": "number"},
          "next": {"type": "array", "items": {"type": "string", "minLength": 1}}
        }
      }
    }
  }
}`

var schema *gojsonschema.Schema

func init() {
	var err error
	schema, err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	if err != nil {
		panic(errors.Wrap(err, "loader: document schema"))
	}
}

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "schema violations: " + strings.Join(e.Problems, "; ")
}

// Unwrap lets errors.Is match ErrInvalidDocument.
func (e *ValidationError) Unwrap() error { return ErrInvalidDocument }

// ParseDocument converts YAML or JSON to a validated Document.
func ParseDocument(data []byte) (*Document, error) {
	// 1. YAML is a superset of JSON: normalize to JSON for the validator
	js, err := toJSON(data)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDocument, "syntax: %v", err)
	}

	// 2. Validate structure
	res, err := schema.Validate(gojsonschema.NewBytesLoader(js))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDocument, "validate: %v", err)
	}
	if !res.Valid() {
		problems := make([]string, 0, len(res.Errors()))
		for _, re := range res.Errors() {
			problems = append(problems, re.String())
		}
		return nil, &ValidationError{Problems: problems}
	}

	// 3. Decode
	var doc Document
	if err = json.Unmarshal(js, &doc); err != nil {
		return nil, errors.Wrapf(ErrInvalidDocument, "decode: %v", err)
	}

	return &doc, nil
}

// toJSON converts a YAML 1.2 (or JSON) document to JSON. YAML 1.1 readers
// turn the bare key y into a boolean, so the document is parsed with yaml.v3
// and then marshalled.
func toJSON(data []byte) ([]byte, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	return json.Marshal(stringKeys(v))
}

// stringKeys rewrites nested maps so every key is a string.
func stringKeys(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, e := range t {
			t[k] = stringKeys(e)
		}
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case []interface{}:
		for i, e := range t {
			t[i] = stringKeys(e)
		}
	}

	return v
}

// Graph builds a core.Graph from the document. Vertices get IDs in
// declaration order; arcs follow each vertex's next list in order.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	gopts := append([]core.GraphOption{core.WithCapacity(len(d.Vertices))}, opts...)
	if d.Undirected {
		gopts = append(gopts, core.WithUndirected())
	}
	g := core.NewGraph(gopts...)

	for _, v := range d.Vertices {
		if v.Label == "" {
			return nil, errors.Wrap(ErrInvalidDocument, "vertex with empty label")
		}
		if _, err := g.AddVertex(v.Label, orb.Point{v.X, v.Y}); err != nil {
			return nil, errors.Wrapf(err, "vertex %q", v.Label)
		}
	}
	for u, v := range d.Vertices {
		for _, next := range v.Next {
			to, ok := g.VertexByLabel(next)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownVertex, "%q → %q", v.Label, next)
			}
			if err := g.AddEdge(u, to); err != nil {
				return nil, errors.Wrapf(err, "arc %q → %q", v.Label, next)
			}
		}
	}

	return g, nil
}

func decodeDocument(data []byte, o Options) (*core.Graph, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	return doc.Graph(o.GraphOptions...)
}
