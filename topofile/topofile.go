// Package topofile loads topology snapshots from files: YAML neighbor-cost
// maps and the Inet topology generator format.
//
// Loaders only read; the returned core.Graph is fully validated and owned by
// the caller.
package topofile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/linkstate/core"
)

// Sentinel errors.
var (
	// ErrMalformed wraps every syntax or consistency problem in an input file.
	ErrMalformed = errors.New("topofile: malformed topology")

	// ErrUnknownFormat is returned when no loader matches the requested format.
	ErrUnknownFormat = errors.New("topofile: unknown topology format")
)

// Format names a topology file format.
type Format string

const (
	// FormatAuto picks the loader from the file extension.
	FormatAuto Format = ""
	// FormatYAML is the node → neighbor → cost YAML document.
	FormatYAML Format = "yaml"
	// FormatInet is the Inet topology generator text format.
	FormatInet Format = "inet"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatAuto, FormatYAML, FormatInet:
		return f, nil
	case "auto":
		return FormatAuto, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Detect maps a file extension to a Format.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".inet", ".txt":
		return FormatInet, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format of %q", ErrUnknownFormat, path)
	}
}

// Load opens path and decodes it with the loader for format. FormatAuto
// infers the format from the extension.
func Load(path string, format Format) (*core.Graph, error) {
	if format == FormatAuto {
		var err error
		if format, err = Detect(path); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topofile: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads a topology in the given (explicit) format from r.
func Decode(r io.Reader, format Format) (*core.Graph, error) {
	switch format {
	case FormatYAML:
		return LoadYAML(r)
	case FormatInet:
		return LoadInet(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
