package mimicfs

// Filesystem defines the engine operations front ends consume. All name
// arguments are resolved against the current working directory; Search,
// Stats and Walk cover the whole tree regardless of the current location.
//
// Every failure is one of the typed [Error] values; there is no partial
// mutation on failure.
type Filesystem interface {
	// CreateFile creates a file named name under the current directory with
	// the given initial content (may be empty).
	CreateFile(name string, content []byte) (EntryInfo, error)

	// CreateDir creates an empty directory named name under the current
	// directory.
	CreateDir(name string) (EntryInfo, error)

	// ChangeDir moves the current directory. Target is "..", "/", or the
	// name of a child directory.
	ChangeDir(target string) error

	// WriteFile replaces the content of an existing file in the current
	// directory and bumps its modified time.
	WriteFile(name string, content []byte) error

	// ReadFile returns a copy of a file's content.
	ReadFile(name string) ([]byte, error)

	// Delete removes a file or an empty directory from the current
	// directory. Non-empty directories are refused.
	Delete(name string) error

	// Stat returns metadata for a child of the current directory of either
	// kind.
	Stat(name string) (EntryInfo, error)

	// CurrentPath returns the absolute path of the current directory.
	CurrentPath() string

	// List returns the current directory's children in insertion order.
	List() []EntryInfo

	// Stats returns whole-tree aggregate counts.
	Stats() Stats

	// Search returns the absolute paths of every file anywhere in the tree
	// whose name contains query as a substring. Directories never match.
	Search(query string) []string

	// Walk enumerates the whole tree depth-first, root first. The walk
	// stops early when fn returns false.
	Walk(fn WalkFunc)
}

// WalkFunc is invoked once per entry during [Filesystem.Walk].
// Returning false stops the walk.
type WalkFunc func(e TreeEntry) bool
