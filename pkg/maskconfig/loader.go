package maskconfig

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed masks/*
var embeddedMasks embed.FS

// EmbeddedFS returns the bundled mask documents.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedMasks, "masks")
	if err != nil {
		panic(err)
	}
	return sub
}

// Default loads the bundled mask set.
func Default(opts ...Option) (*Set, error) {
	return LoadFS(EmbeddedFS(), opts...)
}

// LoadFS walks fsys and loads every JSON, YAML and TOML document into one
// set. A nil fsys yields an empty set. Mask names must be unique across
// documents.
func LoadFS(fsys fs.FS, opts ...Option) (*Set, error) {
	o := newOptions(opts)
	set := NewSet(o.cache)
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isMaskFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("maskconfig: read %s: %w", path, err)
		}
		defs, err := Parse(data, path)
		if err != nil {
			return err
		}
		for _, def := range defs {
			if err := set.Register(def); err != nil {
				return err
			}
		}
		o.logger.Debug("maskconfig: loaded document", "path", path, "masks", len(defs))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// LoadPath loads a single document or a directory of documents.
func LoadPath(path string, opts ...Option) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("maskconfig: %w", err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path), opts...)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maskconfig: read %s: %w", path, err)
	}
	defs, err := Parse(data, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	set := NewSet(o.cache)
	for _, def := range defs {
		if err := set.Register(def); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func isMaskFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}
