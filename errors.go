package mimicfs

// Error is a domain error from engine operations. Front ends inspect Code
// to choose a message; Name is the entry name the operation was resolving
// when it failed.
type Error struct {
	Code ErrorCode
	Name string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Name != "" {
		return e.Code.String() + ": " + e.Name
	}
	return e.Code.String()
}

// ErrorCode is the category of an engine error. Failures are deterministic
// functions of tree state and input; there is nothing to retry.
type ErrorCode int

const (
	// ErrInvalidName indicates an empty name or one containing the path
	// separator. Raised before any lookup.
	ErrInvalidName ErrorCode = iota

	// ErrAlreadyExists indicates a sibling of either kind already has the
	// requested name.
	ErrAlreadyExists

	// ErrFileNotFound indicates no child with that name, or a child of the
	// wrong kind for a file operation. Wrong kind is indistinguishable from
	// absent to the caller.
	ErrFileNotFound

	// ErrDirectoryNotFound is the directory-intent variant of not-found,
	// raised by ChangeDir.
	ErrDirectoryNotFound

	// ErrDirectoryNotEmpty indicates deletion was requested on a directory
	// that still has children.
	ErrDirectoryNotEmpty
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidName:
		return "invalid name"
	case ErrAlreadyExists:
		return "already exists"
	case ErrFileNotFound:
		return "file not found"
	case ErrDirectoryNotFound:
		return "directory not found"
	case ErrDirectoryNotEmpty:
		return "directory not empty"
	default:
		return "unknown error"
	}
}

// NewError builds an [Error] for the given code and entry name.
func NewError(code ErrorCode, name string) *Error {
	return &Error{Code: code, Name: name}
}

// CodeOf extracts the ErrorCode from err. The second return is false when
// err is not an engine [Error].
func CodeOf(err error) (ErrorCode, bool) {
	if e, ok := err.(*Error); ok {
		return e.Code, true
	}
	return 0, false
}
