package ds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.Equal(t, 0, lhm.Len())
	assert.Empty(t, lhm.Keys())

	lhm.Put("b", 2)
	lhm.Put("a", 1)
	lhm.Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, lhm.Keys())
	assert.Equal(t, []int{3, 1}, lhm.Values())
	assert.Equal(t, 2, lhm.Len())
}

func TestLinkedHashMap_Get(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("abc", 1)

	value, ok := lhm.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, 1, value)

	_, ok = lhm.Get("def")
	assert.False(t, ok)
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("def", 2)
	lhm.Put("abc", "x")
	lhm.Put("ghi", []int{1, 2})

	bs, err := json.Marshal(lhm)
	require.NoError(t, err)
	assert.Equal(t, `{"def":2,"abc":"x","ghi":[1,2]}`, string(bs))

	empty, err := json.Marshal(NewLinkedHashMap[string, any]())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestErrUnreachableCode_Error(t *testing.T) {
	assert.Equal(t, "Parse: unreachable code", ErrUnreachableCode{Caller: "Parse"}.Error())
	assert.Equal(
		t,
		"Parse: unreachable code (complex128)",
		ErrUnreachableCode{Caller: "Parse", Detail: "complex128"}.Error(),
	)
}
