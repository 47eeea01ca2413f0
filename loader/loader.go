// Package loader reads JSON service-model documents from an ordered list of
// search paths.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Tim020/botocore/botoerr"
)

// Loader resolves data paths like "ec2/2014-01-01/service" against its
// search paths, first hit wins.
type Loader struct {
	searchPaths []string
	log         *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to trace resolution.
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// New creates a Loader over the given search paths. With none supplied the
// relative "data" directory is used.
func New(searchPaths []string, opts ...Option) *Loader {
	if len(searchPaths) == 0 {
		searchPaths = []string{"data"}
	}
	ld := &Loader{searchPaths: searchPaths, log: slog.Default()}
	for _, o := range opts {
		o(ld)
	}
	return ld
}

// Load decodes the JSON document for dataPath into v. A path resolvable in
// no search path is a DataNotFoundError; a document that exists but cannot
// be read or decoded propagates its underlying failure.
func (ld *Loader) Load(dataPath string, v any) error {
	for _, root := range ld.searchPaths {
		full := filepath.Join(root, filepath.FromSlash(dataPath)+".json")
		b, err := os.ReadFile(full)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", full, err)
		}
		if err := json.Unmarshal(b, v); err != nil {
			return fmt.Errorf("decoding %s: %w", full, err)
		}
		ld.log.Debug("data loaded", slog.String("data_path", dataPath), slog.String("file", full))
		return nil
	}
	return botoerr.NewDataNotFoundError(dataPath)
}

// Exists reports whether dataPath resolves in any search path.
func (ld *Loader) Exists(dataPath string) bool {
	for _, root := range ld.searchPaths {
		full := filepath.Join(root, filepath.FromSlash(dataPath)+".json")
		if _, err := os.Stat(full); err == nil {
			return true
		}
	}
	return false
}
