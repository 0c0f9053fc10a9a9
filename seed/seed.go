// Package seed pre-populates a filesystem from a YAML or JSON entry list so
// a session does not have to start from an empty tree.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mimicfs/mimicfs"
	"github.com/mimicfs/mimicfs/internal/util"
)

// EntryType valid types are FileEntry "file", DirEntry "dir"
type EntryType string

const (
	FileEntry EntryType = "file"
	DirEntry  EntryType = "dir"
)

// Entry describes one node to create. Path is absolute-style with "/"
// separators; missing ancestor directories are created on the way.
type Entry struct {
	Path    string    `yaml:"path" json:"path"`
	Type    EntryType `yaml:"type" json:"type"`
	Content string    `yaml:"content,omitempty" json:"content,omitempty"` // files only
}

// Result reports how many nodes a seed application created.
type Result struct {
	Dirs    int
	Files   int
	Skipped int // entries that could not be applied
}

// Load reads a seed entry list from a YAML (.yaml, .yml) or JSON (.json) file.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown seed file extension: %s", path)
	}

	return entries, nil
}

// Apply creates the entries through the engine's public operations,
// making missing ancestor directories along each path. Entries that cannot
// be applied are logged and skipped. The current directory is left at the
// root.
func Apply(fs mimicfs.Filesystem, entries []Entry) Result {
	logger := util.GetLogger("seed.Apply")

	var res Result
	for _, e := range entries {
		if err := applyEntry(fs, e, &res); err != nil {
			logger.Warn().Err(err).Str("path", e.Path).Msg("Skipping seed entry")
			res.Skipped++
		}
	}
	// callers expect to start their session at the root
	if err := fs.ChangeDir(mimicfs.Separator); err != nil {
		logger.Error().Err(err).Msg("Failed to return to root after seeding")
	}

	logger.Info().Int("directories", res.Dirs).Int("files", res.Files).Int("skipped", res.Skipped).
		Msg("Seed entries applied")
	return res
}

// applyEntry walks the entry's path from the root, creating missing
// directories, then creates the leaf. Directory leaves follow mkdir -p
// semantics (an existing directory is not an error); file leaves must not
// already exist.
func applyEntry(fs mimicfs.Filesystem, e Entry, res *Result) error {
	parts := splitPath(e.Path)
	if len(parts) == 0 {
		return fmt.Errorf("empty path")
	}
	if e.Type != FileEntry && e.Type != DirEntry {
		return fmt.Errorf("unknown entry type: %q", e.Type)
	}

	if err := fs.ChangeDir(mimicfs.Separator); err != nil {
		return err
	}

	dirs := parts
	leaf := ""
	if e.Type == FileEntry {
		dirs = parts[:len(parts)-1]
		leaf = parts[len(parts)-1]
	}

	for _, d := range dirs {
		if _, err := fs.CreateDir(d); err != nil {
			if code, ok := mimicfs.CodeOf(err); !ok || code != mimicfs.ErrAlreadyExists {
				return err
			}
		} else {
			res.Dirs++
		}
		// an existing file in the way surfaces here as directory-not-found
		if err := fs.ChangeDir(d); err != nil {
			return err
		}
	}

	if e.Type == FileEntry {
		if _, err := fs.CreateFile(leaf, []byte(e.Content)); err != nil {
			return err
		}
		res.Files++
	}
	return nil
}

// splitPath breaks an absolute-style path into its non-empty components.
func splitPath(path string) []string {
	raw := strings.Split(path, mimicfs.Separator)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
