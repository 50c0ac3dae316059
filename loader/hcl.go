package loader

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/critpath/core"
)

// hclFile is the top-level HCL schema.
type hclFile struct {
	Graph    *hclGraph    `hcl:"graph,block"`
	Vertices []*hclVertex `hcl:"vertex,block"`
}

type hclGraph struct {
	Undirected bool `hcl:"undirected,optional"`
}

type hclVertex struct {
	Label string   `hcl:"label,label"`
	X     float64  `hcl:"x"`
	Y     float64  `hcl:"y"`
	Next  []string `hcl:"next,optional"`
}

// evalContext exposes vars as var.<name> to HCL expressions.
func evalContext(vars map[string]float64) *hcl.EvalContext {
	if len(vars) == 0 {
		return nil
	}
	obj := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		obj[k] = cty.NumberFloatVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(obj)},
	}
}

func decodeHCL(data []byte, o Options) (*core.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, o.Name)
	if diags.HasErrors() {
		return nil, errors.Wrapf(ErrInvalidDocument, "parse: %s", diags.Error())
	}

	var f hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(o.Variables), &f)
	if diags.HasErrors() {
		return nil, errors.Wrapf(ErrInvalidDocument, "decode: %s", diags.Error())
	}

	doc := Document{Vertices: make([]VertexDocument, len(f.Vertices))}
	if f.Graph != nil {
		doc.Undirected = f.Graph.Undirected
	}
	for i, v := range f.Vertices {
		doc.Vertices[i] = VertexDocument{Label: v.Label, X: v.X, Y: v.Y, Next: v.Next}
	}

	return doc.Graph(o.GraphOptions...)
}
