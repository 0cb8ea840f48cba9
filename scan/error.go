package scan

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	EndOfInput Kind = iota + 1
	ParseFailure
	TokenCountMismatch
	InvalidArgument
)

func (k Kind) String() string {
	switch k {
	case EndOfInput:
		return "end of input"
	case ParseFailure:
		return "parse failure"
	case TokenCountMismatch:
		return "token count mismatch"
	case InvalidArgument:
		return "invalid argument"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the value every read operation panics with. Index is -1 when the
// failure is not tied to a single token.
type Error struct {
	Kind  Kind
	Line  string
	Token string
	Index int
	Want  int
	Got   int
	Err   error
}

// Sentinels for errors.Is; they match any *Error of the same Kind.
var (
	ErrEndOfInput         = &Error{Kind: EndOfInput, Index: -1}
	ErrParseFailure       = &Error{Kind: ParseFailure, Index: -1}
	ErrTokenCountMismatch = &Error{Kind: TokenCountMismatch, Index: -1}
	ErrInvalidArgument    = &Error{Kind: InvalidArgument, Index: -1}
)

func (r *Error) Error() string {
	msg := "scan: " + r.Kind.String()
	switch r.Kind {
	case ParseFailure:
		msg += fmt.Sprintf(` at token %d "%s" of line "%s"`, r.Index, r.Token, r.Line)
	case TokenCountMismatch:
		msg += fmt.Sprintf(`: expected %d tokens, got %d in line "%s"`, r.Want, r.Got, r.Line)
	}
	if r.Err != nil {
		msg += ": " + r.Err.Error()
	}
	return msg
}

func (r *Error) Cause() error {
	return r.Err
}

func (r *Error) Unwrap() error {
	return r.Err
}

func (r *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == r.Kind
}

// Catch turns a read panic back into an error. It must be deferred directly:
//
//	func run() (err error) {
//		defer scan.Catch(&err)
//		...
//	}
//
// Panics that are not *Error are re-raised.
func Catch(err *error) {
	recovered := recover()
	if recovered == nil {
		return
	}
	scanErr, ok := recovered.(*Error)
	if !ok {
		panic(recovered)
	}
	*err = scanErr
}

func newParseFailure(line string, token string, index int, err error) *Error {
	return &Error{
		Kind:  ParseFailure,
		Line:  line,
		Token: token,
		Index: index,
		Err:   err,
	}
}

func newTokenCountMismatch(line string, want int, got int) *Error {
	return &Error{
		Kind:  TokenCountMismatch,
		Line:  line,
		Index: -1,
		Want:  want,
		Got:   got,
		Err:   errors.New("every token of the line must be consumed"),
	}
}
