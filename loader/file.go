// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/roadsearch/core"
)

// FormatFor picks the format from a file extension: .yaml and .yml are YAML,
// anything else is Text.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return Text
	}
}

// Load reads r in the given format.
func Load(r io.Reader, format Format, opts ...Option) (*core.Graph, Stats, error) {
	switch format {
	case Text:
		return Parse(r, opts...)
	case YAML:
		return ParseYAML(r, opts...)
	default:
		return nil, Stats{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

// LoadFile opens path and loads it in the format chosen by FormatFor.
func LoadFile(path string, opts ...Option) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	g, st, err := Load(f, FormatFor(path), opts...)
	if err != nil {
		return nil, st, fmt.Errorf("loader: %s: %w", path, err)
	}

	return g, st, nil
}
