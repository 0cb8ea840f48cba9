package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuple2(t *testing.T) {
	assert.Equal(t, Pair[int32, int32]{3, 4}, Tuple2[int32, int32](newReader("3 4")))
	assert.Equal(t, Pair[int32, int32]{3, 4}, Tuple2[int32, int32](newReader("  3\t4  ")))
}

func TestTuple2_TokenCountMismatch(t *testing.T) {
	tests := map[string]struct {
		in  string
		got int
	}{
		"extra token":   {"3 4 5", 3},
		"missing token": {"3", 1},
		"blank line":    {"", 0},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := catchScan(func() {
				Tuple2[int32, int32](newReader(test.in))
			})
			scanErr := requireScanError(t, err, TokenCountMismatch)
			assert.Equal(t, 2, scanErr.Want)
			assert.Equal(t, test.got, scanErr.Got)
		})
	}
}

func TestTuple2_CountIsCheckedBeforeParsing(t *testing.T) {
	err := catchScan(func() {
		Tuple2[int, int](newReader("x y z"))
	})
	requireScanError(t, err, TokenCountMismatch)
}

func TestTuple2_ParseFailure(t *testing.T) {
	err := catchScan(func() {
		Tuple2[int, bool](newReader("1 maybe"))
	})
	scanErr := requireScanError(t, err, ParseFailure)
	assert.Equal(t, 1, scanErr.Index)
	assert.Equal(t, "maybe", scanErr.Token)
}

func TestTuple3(t *testing.T) {
	assert.Equal(
		t,
		Triple[string, int, float64]{"alice", 30, 1.65},
		Tuple3[string, int, float64](newReader("alice 30 1.65")),
	)
}

func TestTuple4(t *testing.T) {
	assert.Equal(
		t,
		Quadruple[int8, uint16, bool, string]{-1, 2, false, "z"},
		Tuple4[int8, uint16, bool, string](newReader("-1 2 false z")),
	)
}

func TestTuple5(t *testing.T) {
	r := newReader("1 2 3 4 5", "1 2 3 4")
	assert.Equal(
		t,
		Quintuple[int, int, int, int, int]{1, 2, 3, 4, 5},
		Tuple5[int, int, int, int, int](r),
	)
	err := catchScan(func() {
		Tuple5[int, int, int, int, int](r)
	})
	requireScanError(t, err, TokenCountMismatch)
}

func TestTuple2Func(t *testing.T) {
	upper := func(token string) (string, error) {
		return strings.ToUpper(token), nil
	}
	assert.Equal(
		t,
		Pair[string, int]{"AB", 7},
		Tuple2Func[string, int](newReader("ab 7"), upper, Parse[int]),
	)
}
