package ds

import (
	"bytes"
	"container/list"
	"encoding/json"
)

// LinkedHashMap is a map that remembers insertion-order in serialization and keys fetching.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering *list.List
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: list.New(),
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return r.ordering.Len()
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		keys = append(keys, key)
	}
	return keys
}

func (r *LinkedHashMap[K, V]) Values() []V {
	values := make([]V, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		values = append(values, r.hashMap[runner.Value.(K)])
	}
	return values
}

// Put keeps the position of an existing key and only replaces its value.
func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.hashMap[key]; !existed {
		r.ordering.PushBack(key)
	}
	r.hashMap[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0))

	buf.WriteRune('{')
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)

		keyBs, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBs)

		buf.WriteRune(':')

		valueBs, err := json.Marshal(r.hashMap[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBs)

		if runner.Next() != nil {
			buf.WriteRune(',')
		}
	}
	buf.WriteRune('}')

	return buf.Bytes(), nil
}
