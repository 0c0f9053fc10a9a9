package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/mimicfs/mimicfs"
)

// renderTree draws the whole tree depth-first. Directories get a trailing
// separator, non-empty files show their size, and the current working
// directory is marked.
func renderTree(w io.Writer, fs mimicfs.Filesystem) {
	fs.Walk(func(e mimicfs.TreeEntry) bool {
		indent := strings.Repeat("  ", e.Depth)

		label := e.Name
		if e.Depth == 0 {
			label = mimicfs.Separator
		}

		switch {
		case e.Kind == mimicfs.KindDirectory && e.Cur:
			fmt.Fprintf(w, "%s%s%s  <-- you are here\n", indent, label, dirSuffix(e.Depth))
		case e.Kind == mimicfs.KindDirectory:
			fmt.Fprintf(w, "%s%s%s\n", indent, label, dirSuffix(e.Depth))
		case e.Size > 0:
			fmt.Fprintf(w, "%s%s (%d bytes)\n", indent, label, e.Size)
		default:
			fmt.Fprintf(w, "%s%s\n", indent, label)
		}
		return true
	})
}

// dirSuffix avoids printing the root as "//".
func dirSuffix(depth int) string {
	if depth == 0 {
		return ""
	}
	return mimicfs.Separator
}
