package config

import "github.com/mimicfs/mimicfs/internal/util"

// CLI verbosity values, mapped onto internal log levels by [Config.Merge].
const (
	ErrorVerbose = 1
	WarnVerbose  = 2
	InfoVerbose  = 3
	DebugVerbose = 4
	TraceVerbose = 5
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.InfoLevel

	// DefaultPrompt is printed before the current path in interactive modes
	DefaultPrompt = "FileSystem"

	// DefaultSortListings sorts directory listings alphabetically for display
	DefaultSortListings = true

	// DefaultSuggestEnabled turns on "did you mean" hints for unknown commands
	DefaultSuggestEnabled = true

	// DefaultSuggestThreshold is the minimum Jaro-Winkler similarity (0-1)
	// an unknown command must reach before a suggestion is offered
	DefaultSuggestThreshold = 0.72

	// DefaultEndMarker terminates multi-line content entry (editfile/nano)
	DefaultEndMarker = "END"
)
