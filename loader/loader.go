package loader

import (
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/critpath/core"
)

// LoadFile reads and decodes the document at path.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	if o.Format == FormatAuto {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		o.Format = f
	}
	if o.Name == "" {
		o.Name = path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return decode(data, o)
}

// Decode builds a graph from an in-memory document. The format must be given
// with WithFormat.
func Decode(data []byte, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	if o.Format == FormatAuto {
		return nil, errors.Wrap(ErrUnknownFormat, "Decode needs WithFormat")
	}
	if o.Name == "" {
		o.Name = string(o.Format)
	}

	return decode(data, o)
}

func resolve(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func decode(data []byte, o Options) (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	switch o.Format {
	case FormatText:
		g, err = decodeText(data, o)
	case FormatYAML, FormatJSON:
		g, err = decodeDocument(data, o)
	case FormatHCL:
		g, err = decodeHCL(data, o)
	case FormatOSM:
		g, err = decodeOSM(data, o)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", o.Format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", o.Name)
	}

	return g, nil
}
