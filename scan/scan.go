package scan

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// One reads a line and parses all of it as a single T.
func One[T Scalar](r *Reader) T {
	return OneFunc[T](r, Parse[T])
}

func OneFunc[T any](r *Reader, parse Parser[T]) T {
	line := r.mustLine()
	return parseAt(line, []string{line}, 0, parse)
}

// Split reads a line and parses every whitespace separated token as T.
// A blank line gives an empty slice.
func Split[T Scalar](r *Reader) []T {
	return SplitFunc[T](r, Parse[T])
}

func SplitFunc[T any](r *Reader, parse Parser[T]) []T {
	line := r.mustLine()
	return parseTokens(line, strings.Fields(line), parse)
}

// SplitWith is Split on every occurrence of sep. Tokens are not trimmed, so
// "1, 2" split on ',' holds the token " 2".
func SplitWith[T Scalar](r *Reader, sep rune) []T {
	return SplitWithFunc[T](r, sep, Parse[T])
}

func SplitWithFunc[T any](r *Reader, sep rune, parse Parser[T]) []T {
	line := r.mustLine()
	tokens := []string{}
	if line != "" {
		tokens = strings.Split(line, string(sep))
	}
	return parseTokens(line, tokens, parse)
}

// Lines reads n lines, one T each. Lines(r, 0) does not touch the stream.
func Lines[T Scalar](r *Reader, n int) []T {
	return LinesFunc[T](r, n, Parse[T])
}

func LinesFunc[T any](r *Reader, n int, parse Parser[T]) []T {
	if n < 0 {
		panic(&Error{
			Kind:  InvalidArgument,
			Index: -1,
			Err:   errors.Errorf("Lines called with negative count %d", n),
		})
	}
	return lo.Times(n, func(_ int) T {
		return OneFunc(r, parse)
	})
}

// Tokens reads a line that must hold exactly k whitespace separated tokens.
func Tokens(r *Reader, k int) []string {
	line := r.mustLine()
	return exactTokens(line, k)
}

func exactTokens(line string, k int) []string {
	tokens := strings.Fields(line)
	if len(tokens) != k {
		panic(newTokenCountMismatch(line, k, len(tokens)))
	}
	return tokens
}

func parseTokens[T any](line string, tokens []string, parse Parser[T]) []T {
	return lo.Map(
		tokens,
		func(_ string, i int) T {
			return parseAt(line, tokens, i, parse)
		},
	)
}
