package filesystem

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/mimicfs/mimicfs"
)

// Node is a single entry in the tree: a file or a directory. Directories
// keep an insertion-ordered child slice plus a name index for O(1)
// membership and lookup. Structural fields are guarded by the owning
// [FileSystem]'s lock; the index map itself tolerates concurrent readers.
//
// The parent pointer is a non-owning back-reference: ownership flows
// strictly parent -> children, so detaching a subtree from its parent is
// enough to release it.
type Node struct {
	id       uuid.UUID
	name     string
	kind     mimicfs.Kind
	content  []byte // files only; empty is distinct from never-written only by timestamps
	created  time.Time
	modified time.Time
	parent   *Node
	index    *xsync.Map[string, *Node] // name -> child; directories only
	order    []*Node                   // children in insertion order; directories only
}

// newNode creates an unattached Node with fresh timestamps.
// The parent adds itself to the returned Node's parent ref when linking it
// as a child.
func newNode(name string, kind mimicfs.Kind) *Node {
	now := time.Now()
	n := &Node{
		id:       uuid.New(),
		name:     name,
		kind:     kind,
		created:  now,
		modified: now,
	}
	if kind == mimicfs.KindDirectory {
		n.index = xsync.NewMap[string, *Node]()
	}
	return n
}

// ID returns the node's immutable identity.
func (n *Node) ID() uuid.UUID { return n.id }

// Name returns the node's immutable name.
func (n *Node) Name() string { return n.name }

// Kind returns the file/directory discriminator, fixed at construction.
func (n *Node) Kind() mimicfs.Kind { return n.kind }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.kind == mimicfs.KindDirectory }

// Size returns the content length in bytes; always 0 for directories.
func (n *Node) Size() int { return len(n.content) }

// addChild appends child to the ordered slice, inserts it into the name
// index and sets the parent back-reference. The engine guarantees the name
// is not already present.
func (n *Node) addChild(child *Node) {
	n.index.Store(child.name, child)
	n.order = append(n.order, child)
	child.parent = n
}

// getChild looks the name up in the index, O(1).
func (n *Node) getChild(name string) (*Node, bool) {
	if n.index == nil {
		return nil, false
	}
	return n.index.Load(name)
}

// hasChild reports whether a child of either kind has the given name.
func (n *Node) hasChild(name string) bool {
	_, ok := n.getChild(name)
	return ok
}

// removeChild erases name from both the index and the ordered slice and
// clears the child's parent reference. The engine checks presence first.
func (n *Node) removeChild(name string) *Node {
	child, ok := n.index.LoadAndDelete(name)
	if !ok {
		return nil
	}
	for i, c := range n.order {
		if c == child {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	child.parent = nil
	return child
}

// children returns the child nodes in insertion order.
func (n *Node) children() []*Node {
	return n.order
}

// release recursively detaches the entire owned subtree, post-order, so no
// node in it keeps a reference back into the live tree. The Go analog of a
// cascading destructor.
func (n *Node) release() {
	for _, c := range n.order {
		c.release()
		c.parent = nil
	}
	n.order = nil
	n.index = nil
	n.content = nil
}

// path walks parent references up to the root collecting names, then
// renders the absolute path root-to-node. The root itself resolves to the
// separator alone. Recomputed on demand, never cached.
func (n *Node) path() string {
	if n.parent == nil {
		return mimicfs.Separator
	}
	var parts []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(mimicfs.Separator)
		b.WriteString(parts[i])
	}
	return b.String()
}

// info returns a read-only metadata snapshot.
func (n *Node) info() mimicfs.EntryInfo {
	return mimicfs.EntryInfo{
		ID:         n.id,
		Name:       n.name,
		Kind:       n.kind,
		Size:       n.Size(),
		CreatedAt:  n.created,
		ModifiedAt: n.modified,
	}
}

// joinPath appends a name to an absolute directory path.
func joinPath(dir, name string) string {
	if dir == mimicfs.Separator {
		return dir + name
	}
	return dir + mimicfs.Separator + name
}
