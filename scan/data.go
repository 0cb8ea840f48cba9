package scan

import (
	"bufio"

	"golang.org/x/exp/constraints"
)

type (
	// Reader reads one line per request from the wrapped stream. It is not
	// safe for concurrent use.
	Reader struct {
		*bufio.Reader
		logger Logger
	}
	// Parser converts a single token into a value of type T.
	Parser[T any] func(token string) (T, error)
	// Field is one position of a record line: the key the parsed value is
	// stored under and the function parsing the token at that position.
	Field struct {
		Key   string
		Type  string
		Parse func(token string) (any, error)
	}
	Logger interface {
		Printf(format string, v ...any)
	}
)

// Scalar is the set of types Parse understands without a custom Parser.
type Scalar interface {
	constraints.Integer | constraints.Float | ~string | ~bool
}

type (
	Pair[A, B any] struct {
		First  A
		Second B
	}
	Triple[A, B, C any] struct {
		First  A
		Second B
		Third  C
	}
	Quadruple[A, B, C, D any] struct {
		First  A
		Second B
		Third  C
		Fourth D
	}
	Quintuple[A, B, C, D, E any] struct {
		First  A
		Second B
		Third  C
		Fourth D
		Fifth  E
	}
)
