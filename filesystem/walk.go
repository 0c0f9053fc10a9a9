package filesystem

import (
	"strings"

	"github.com/mimicfs/mimicfs"
	"github.com/mimicfs/mimicfs/internal/util"
)

// Walk enumerates the whole tree depth-first pre-order, root first,
// descending children in insertion order. The walk stops early when fn
// returns false. Entries carry everything a front end needs to draw a tree
// diagram, including whether the entry is the current directory.
func (fs *FileSystem) Walk(fn mimicfs.WalkFunc) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	fs.walk(fs.root, mimicfs.Separator, 0, fn)
}

// walk visits n and then its subtree. Caller holds fs.mu.
func (fs *FileSystem) walk(n *Node, path string, depth int, fn mimicfs.WalkFunc) bool {
	e := mimicfs.TreeEntry{
		Name:  n.name,
		Path:  path,
		Kind:  n.kind,
		Size:  n.Size(),
		Depth: depth,
		Cur:   n == fs.curDir,
	}
	if !fn(e) {
		return false
	}
	for _, c := range n.children() {
		if !fs.walk(c, joinPath(path, c.name), depth+1, fn) {
			return false
		}
	}
	return true
}

// Search returns the absolute paths of every file anywhere in the tree
// whose name contains query as a substring, case-sensitive. Directories are
// never matched but are always descended into, so a directory's own name is
// not searchable. Results follow the depth-first walk order.
func (fs *FileSystem) Search(query string) []string {
	logger := util.GetLogger("FS.Search")

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	matches := make([]string, 0)
	fs.walk(fs.root, mimicfs.Separator, 0, func(e mimicfs.TreeEntry) bool {
		if e.Kind == mimicfs.KindFile && strings.Contains(e.Name, query) {
			matches = append(matches, e.Path)
		}
		return true
	})
	logger.Debug().Str("query", query).Int("matches", len(matches)).Msg("Search finished")
	return matches
}

// Stats accumulates whole-tree aggregate counts in a single depth-first
// pass: directories visited (root included), files visited, and total
// content bytes across all files.
func (fs *FileSystem) Stats() mimicfs.Stats {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var st mimicfs.Stats
	fs.walk(fs.root, mimicfs.Separator, 0, func(e mimicfs.TreeEntry) bool {
		switch e.Kind {
		case mimicfs.KindDirectory:
			st.Directories++
		case mimicfs.KindFile:
			st.Files++
			st.TotalBytes += e.Size
		}
		return true
	})
	return st
}
