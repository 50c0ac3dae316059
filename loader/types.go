package loader

import (
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/critpath/core"
)

var (
	// ErrUnknownFormat indicates the document format could not be determined.
	ErrUnknownFormat = stderrors.New("loader: unknown format")

	// ErrInvalidDocument indicates the document is malformed.
	ErrInvalidDocument = stderrors.New("loader: invalid document")

	// ErrUnknownVertex indicates an arc references an undeclared vertex.
	ErrUnknownVertex = stderrors.New("loader: unknown vertex")
)

// Format names a document encoding.
type Format string

// Supported formats. FormatAuto resolves from the file extension.
const (
	FormatAuto Format = ""
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
	FormatOSM  Format = "osm"
)

var extensions = map[string]Format{
	".txt":   FormatText,
	".graph": FormatText,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".json":  FormatJSON,
	".hcl":   FormatHCL,
	".osm":   FormatOSM,
}

// FormatFromPath maps a file extension (case-insensitive) to a Format.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}

	return FormatAuto, errors.Wrapf(ErrUnknownFormat, "extension %q", ext)
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatAuto, FormatText, FormatYAML, FormatJSON, FormatHCL, FormatOSM:
		return f, nil
	default:
		return FormatAuto, errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// Option configures a load.
type Option func(*Options)

// Options holds load settings.
type Options struct {
	// Format overrides extension-based detection.
	Format Format

	// GraphOptions are passed to core.NewGraph. Document-level flags
	// (undirected) are appended after them.
	GraphOptions []core.GraphOption

	// Name is used in diagnostics when decoding from memory.
	Name string

	// Variables are visible to HCL expressions as var.<name>.
	Variables map[string]float64
}

// WithFormat forces the document format.
func WithFormat(f Format) Option {
	return func(o *Options) {
		o.Format = f
	}
}

// WithGraphOptions forwards options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *Options) {
		o.GraphOptions = append(o.GraphOptions, opts...)
	}
}

// WithName sets the document name reported in errors.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithVariables makes vars available to HCL documents as var.<name>.
// Other formats ignore them.
func WithVariables(vars map[string]float64) Option {
	return func(o *Options) {
		o.Variables = vars
	}
}
