package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Loader probes for a configuration file at a stem, a path without its
// format extension.
type Loader interface {
	// Load returns the first file found at the stem in any supported
	// format, or nil when none exists. A missing file is not an error; a
	// file that exists but cannot be read or parsed is.
	Load(stem string) (*Result, error)
}

// Result is one successfully loaded configuration file.
type Result struct {
	// Path is the file that was read, extension included.
	Path string
	// Data is the parsed mapping.
	Data map[string]any
}

// Decoder parses one serialization format into a mapping.
type Decoder interface {
	// Extensions lists the file extensions the decoder claims, without the
	// leading dot, in probe order.
	Extensions() []string
	// Decode parses data into a mapping with string keys at every level.
	Decode(data []byte) (map[string]any, error)
}

// FileLoader reads configuration files from the filesystem, trying each
// decoder's extensions in a fixed order so that resolution is deterministic
// when several files share a stem.
type FileLoader struct {
	decoders []Decoder
}

// NewFileLoader returns a FileLoader over the given decoders. With no
// arguments it supports YAML, JSON, JSONC and TOML, probed in that order.
func NewFileLoader(decoders ...Decoder) *FileLoader {
	if len(decoders) == 0 {
		decoders = []Decoder{YAML{}, JSON{}, JSONC{}, TOML{}}
	}

	return &FileLoader{decoders: decoders}
}

// Load probes stem.<ext> for every supported extension and parses the first
// file that exists. Returns nil when no file matches.
func (l *FileLoader) Load(stem string) (*Result, error) {
	for _, decoder := range l.decoders {
		for _, ext := range decoder.Extensions() {
			path := stem + "." + ext

			data, err := os.ReadFile(path) // #nosec G304 -- stems are derived from caller-supplied configuration
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}

			parsed, err := decoder.Decode(data)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}

			return &Result{Path: path, Data: parsed}, nil
		}
	}

	return nil, nil //nolint:nilnil // nil Result is the documented "no file" outcome
}
