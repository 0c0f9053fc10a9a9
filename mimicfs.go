// Package mimicfs contains core domain types and interfaces for the MimicFS
// simulated filesystem
package mimicfs

import (
	"time"

	"github.com/google/uuid"
)

// Separator is the path separator character. Entry names must not contain it.
const Separator = "/"

// RootName is the sentinel name given to the root directory at construction.
// The root's resolved path is always [Separator] alone.
const RootName = "root"

// Kind is the file/directory discriminator of an entry
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// EntryInfo is a read-only snapshot of a single entry's metadata.
// Size is the content length in bytes; always 0 for directories.
type EntryInfo struct {
	ID         uuid.UUID
	Name       string
	Kind       Kind
	Size       int
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// TreeEntry is one node of a depth-first tree enumeration. It carries
// everything a front end needs to draw a tree diagram without touching
// engine internals.
type TreeEntry struct {
	Name  string
	Path  string // absolute path from root
	Kind  Kind
	Size  int
	Depth int  // 0 for root
	Cur   bool // true if the entry is the current working directory
}

// Stats are whole-tree aggregate counts. Directories includes the root.
type Stats struct {
	Directories int
	Files       int
	TotalBytes  int
}
