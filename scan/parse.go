package scan

import (
	"reflect"
	"strconv"

	"github.com/pkg/errors"

	"linescan/ds"
)

// Parse converts token into T with strconv semantics. The whole token has to
// be consumed: "12x" is not an int and "" is only a valid string.
func Parse[T Scalar](token string) (T, error) {
	var t T
	value := reflect.ValueOf(&t).Elem()
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(token, 10, value.Type().Bits())
		if err != nil {
			return t, errors.Wrapf(err, `Parse error reading "%s" as %T`, token, t)
		}
		value.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(token, 10, value.Type().Bits())
		if err != nil {
			return t, errors.Wrapf(err, `Parse error reading "%s" as %T`, token, t)
		}
		value.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(token, value.Type().Bits())
		if err != nil {
			return t, errors.Wrapf(err, `Parse error reading "%s" as %T`, token, t)
		}
		value.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return t, errors.Wrapf(err, `Parse error reading "%s" as %T`, token, t)
		}
		value.SetBool(b)
	case reflect.String:
		value.SetString(token)
	default:
		panic(ds.ErrUnreachableCode{
			Caller: "Parse",
			Detail: value.Kind().String(),
		})
	}
	return t, nil
}

func parseAt[T any](line string, tokens []string, i int, parse Parser[T]) T {
	t, err := parse(tokens[i])
	if err != nil {
		panic(newParseFailure(line, tokens[i], i, err))
	}
	return t
}
