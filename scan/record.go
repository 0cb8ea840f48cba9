package scan

import (
	"encoding/json"

	"github.com/pkg/errors"

	"linescan/ds"
)

func FieldOf[T Scalar](key string, typeName string) Field {
	return Field{
		Key:  key,
		Type: typeName,
		Parse: func(token string) (any, error) {
			t, err := Parse[T](token)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
	}
}

// RecordMap reads a line holding exactly one token per field and returns the
// parsed values keyed by Field.Key, in field order.
func RecordMap(r *Reader, fields []Field) *ds.LinkedHashMap[string, any] {
	line := r.mustLine()
	tokens := exactTokens(line, len(fields))
	values := ds.NewLinkedHashMap[string, any]()
	for i, field := range fields {
		value, err := field.Parse(tokens[i])
		if err != nil {
			err := errors.Wrapf(err, `RecordMap error reading field "%s"`, field.Key)
			panic(newParseFailure(line, tokens[i], i, err))
		}
		values.Put(field.Key, value)
	}
	return values
}

// Record creates the final value t with type T by
//
//   - Reading the line into an ordered map with RecordMap, then
//   - Create JSON bytes from the map, and finally
//   - Read the JSON bytes into t
//
// so struct fields are matched by their json tags against Field.Key.
func Record[T any](r *Reader, fields []Field) *T {
	values := RecordMap(r, fields)
	tBytes, err := json.Marshal(values)
	if err != nil {
		err := errors.Wrapf(err, `Record error marshalling keys %v to JSON`, values.Keys())
		panic(newParseFailure("", "", -1, err))
	}

	var t T
	if err := json.Unmarshal(tBytes, &t); err != nil {
		err := errors.Wrapf(
			err, `Record error unmarshalling bytes "%s" to type "%T"`,
			string(tBytes), t,
		)
		panic(newParseFailure("", "", -1, err))
	}
	return &t
}
