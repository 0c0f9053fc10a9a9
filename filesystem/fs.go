// Package filesystem implements the in-memory namespace engine: a simulated
// directory tree with a current working directory scoping all relative
// operations. One engine instance exclusively owns its tree.
package filesystem

import (
	"strings"
	"sync"
	"time"

	"github.com/mimicfs/mimicfs"
	"github.com/mimicfs/mimicfs/config"
	"github.com/mimicfs/mimicfs/internal/util"
)

// FileSystem owns the root of the node tree and the current-directory
// reference. It is the sole mutator of the tree and enforces the naming and
// structural invariants. A single lock serializes structural mutations, the
// locking discipline a concurrent caller would need anyway.
//
// Deletion is always resolved against the current directory's own children,
// so the current directory can never be removed out from under the engine.
type FileSystem struct {
	cfg    *config.Config
	root   *Node // root of node tree; owned, lives as long as the engine
	curDir *Node // non-owning; always a directory reachable from root
	mu     sync.RWMutex
}

var _ mimicfs.Filesystem = (*FileSystem)(nil)

// New creates a FileSystem with a fresh root directory as the current
// directory.
func New(cfg *config.Config) *FileSystem {
	root := newNode(mimicfs.RootName, mimicfs.KindDirectory)
	return &FileSystem{cfg: cfg, root: root, curDir: root}
}

// validateName rejects empty names and names containing the path separator.
// Checked before any lookup.
func validateName(name string) error {
	if name == "" || strings.Contains(name, mimicfs.Separator) {
		return mimicfs.NewError(mimicfs.ErrInvalidName, name)
	}
	return nil
}

// CreateFile creates a file named name in the current directory with the
// given initial content. Fails if the name is invalid or a sibling of
// either kind already has it.
func (fs *FileSystem) CreateFile(name string, content []byte) (mimicfs.EntryInfo, error) {
	logger := util.GetLogger("FS.CreateFile")

	if err := validateName(name); err != nil {
		return mimicfs.EntryInfo{}, err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.curDir.hasChild(name) {
		logger.Debug().Str("name", name).Str("dir", fs.curDir.path()).Msg("Name already taken by a sibling")
		return mimicfs.EntryInfo{}, mimicfs.NewError(mimicfs.ErrAlreadyExists, name)
	}

	node := newNode(name, mimicfs.KindFile)
	node.content = append([]byte(nil), content...)
	fs.curDir.addChild(node)
	logger.Debug().Str("path", node.path()).Int("size", node.Size()).Msg("Created file node")
	return node.info(), nil
}

// CreateDir creates an empty directory named name in the current directory.
// Same validation and duplicate rule as CreateFile.
func (fs *FileSystem) CreateDir(name string) (mimicfs.EntryInfo, error) {
	logger := util.GetLogger("FS.CreateDir")

	if err := validateName(name); err != nil {
		return mimicfs.EntryInfo{}, err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.curDir.hasChild(name) {
		logger.Debug().Str("name", name).Str("dir", fs.curDir.path()).Msg("Name already taken by a sibling")
		return mimicfs.EntryInfo{}, mimicfs.NewError(mimicfs.ErrAlreadyExists, name)
	}

	node := newNode(name, mimicfs.KindDirectory)
	fs.curDir.addChild(node)
	logger.Debug().Str("path", node.path()).Msg("Created directory node")
	return node.info(), nil
}

// ChangeDir moves the current directory. ".." moves to the parent and fails
// at the root; "/" moves to the root unconditionally; anything else must
// name a child directory. A file with the target name is treated as
// not-found, not as a type error.
func (fs *FileSystem) ChangeDir(target string) error {
	logger := util.GetLogger("FS.ChangeDir")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	switch target {
	case "..":
		if fs.curDir.parent == nil {
			return mimicfs.NewError(mimicfs.ErrDirectoryNotFound, target)
		}
		fs.curDir = fs.curDir.parent
	case mimicfs.Separator:
		fs.curDir = fs.root
	default:
		child, ok := fs.curDir.getChild(target)
		if !ok || !child.IsDir() {
			return mimicfs.NewError(mimicfs.ErrDirectoryNotFound, target)
		}
		fs.curDir = child
	}
	logger.Trace().Str("path", fs.curDir.path()).Msg("Changed directory")
	return nil
}

// WriteFile replaces the content of an existing file in the current
// directory and bumps its modified time. A directory with that name, or no
// match, both fail with file-not-found.
func (fs *FileSystem) WriteFile(name string, content []byte) error {
	logger := util.GetLogger("FS.WriteFile")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	child, ok := fs.curDir.getChild(name)
	if !ok || child.IsDir() {
		return mimicfs.NewError(mimicfs.ErrFileNotFound, name)
	}
	child.content = append([]byte(nil), content...)
	child.modified = time.Now()
	logger.Debug().Str("path", child.path()).Int("size", child.Size()).Msg("Wrote file content")
	return nil
}

// ReadFile returns a copy of a file's content. Same lookup and kind rule as
// WriteFile.
func (fs *FileSystem) ReadFile(name string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	child, ok := fs.curDir.getChild(name)
	if !ok || child.IsDir() {
		return nil, mimicfs.NewError(mimicfs.ErrFileNotFound, name)
	}
	return append([]byte(nil), child.content...), nil
}

// Delete removes a file or an empty directory from the current directory
// and releases its subtree. A directory that still has children is refused;
// deletion is never recursive by policy.
func (fs *FileSystem) Delete(name string) error {
	logger := util.GetLogger("FS.Delete")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	child, ok := fs.curDir.getChild(name)
	if !ok {
		return mimicfs.NewError(mimicfs.ErrFileNotFound, name)
	}
	if child.IsDir() && len(child.children()) > 0 {
		return mimicfs.NewError(mimicfs.ErrDirectoryNotEmpty, name)
	}

	fs.curDir.removeChild(name)
	child.release()
	logger.Debug().Str("name", name).Str("dir", fs.curDir.path()).Msg("Deleted entry")
	return nil
}

// Stat returns metadata for a child of the current directory of either kind.
func (fs *FileSystem) Stat(name string) (mimicfs.EntryInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	child, ok := fs.curDir.getChild(name)
	if !ok {
		return mimicfs.EntryInfo{}, mimicfs.NewError(mimicfs.ErrFileNotFound, name)
	}
	return child.info(), nil
}

// CurrentPath returns the absolute path of the current directory,
// reconstructed from parent references on every call.
func (fs *FileSystem) CurrentPath() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.curDir.path()
}

// List returns the current directory's children in insertion order. An
// empty directory yields an empty, non-nil slice.
func (fs *FileSystem) List() []mimicfs.EntryInfo {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	children := fs.curDir.children()
	infos := make([]mimicfs.EntryInfo, 0, len(children))
	for _, c := range children {
		infos = append(infos, c.info())
	}
	return infos
}
