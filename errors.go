package gli

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors. Operations wrap these, so test with errors.Is.
var (
	ErrEmptyTexture         = errors.New("gli: texture is empty")
	ErrReleased             = errors.New("gli: texture already released")
	ErrInvalidFormat        = errors.New("gli: invalid format")
	ErrInvalidTarget        = errors.New("gli: invalid target")
	ErrInvalidExtent        = errors.New("gli: invalid extent")
	ErrInvalidLevels        = errors.New("gli: invalid level count")
	ErrInvalidLayers        = errors.New("gli: invalid layer count")
	ErrInvalidFaces         = errors.New("gli: invalid face count")
	ErrRangeOutOfBounds     = errors.New("gli: range out of bounds")
	ErrIncompatibleFormat   = errors.New("gli: incompatible block size")
	ErrUnsupportedFormat    = errors.New("gli: unsupported format")
	ErrUnsupportedContainer = errors.New("gli: unsupported container")
	ErrMalformed            = errors.New("gli: malformed container data")
	ErrInvalidSwizzle       = errors.New("gli: invalid swizzle")
	ErrInvalidPath          = errors.New("gli: invalid path")
)

// ErrorKind classifies an *Error.
type ErrorKind uint8

const (
	// KindLoadTexture reports a container that could not be parsed.
	KindLoadTexture ErrorKind = iota
	// KindSaveTexture reports a texture that could not be encoded.
	KindSaveTexture
	// KindPath reports an unusable file path.
	KindPath
	// KindIO reports a file system failure.
	KindIO
	// KindBug reports a violated invariant in the storage and view model.
	// These are programmer errors; the wrapped error carries a stack trace
	// printable with %+v.
	KindBug
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindLoadTexture:
		return "load texture"
	case KindSaveTexture:
		return "save texture"
	case KindPath:
		return "path"
	case KindIO:
		return "io"
	case KindBug:
		return "bug"
	default:
		return "unknown"
	}
}

// Error is the error type returned at the load and save boundary and for
// storage invariant violations.
type Error struct {
	Kind   ErrorKind
	Reason string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	msg := "gli: " + e.Kind.String()
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Format implements fmt.Formatter so that %+v prints the stack trace of
// bug errors.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.Err != nil {
		_, _ = fmt.Fprintf(s, "%s\n%+v", e.Error(), e.Err)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}

// IsBug reports whether err is an invariant violation.
func IsBug(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindBug
}

// bugf records an invariant violation with a stack trace.
func bugf(sentinel error, format string, args ...any) error {
	return &Error{
		Kind:   KindBug,
		Reason: fmt.Sprintf(format, args...),
		Err:    pkgerrors.WithStack(sentinel),
	}
}

func loadError(path string, err error) error {
	return &Error{Kind: KindLoadTexture, Path: path, Err: err}
}

func saveError(path string, err error) error {
	return &Error{Kind: KindSaveTexture, Path: path, Err: err}
}

func ioError(path string, err error) error {
	return &Error{Kind: KindIO, Path: path, Err: err}
}

func pathError(path string, sentinel error, reason string) error {
	return &Error{Kind: KindPath, Path: path, Reason: reason, Err: sentinel}
}

// malformed wraps ErrMalformed with a description of what was wrong.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...)
}
