package scan

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var fieldConstructors = map[string]func(key string, typeName string) Field{
	"int":     FieldOf[int],
	"int32":   FieldOf[int32],
	"int64":   FieldOf[int64],
	"uint":    FieldOf[uint],
	"uint64":  FieldOf[uint64],
	"float":   FieldOf[float64],
	"float32": FieldOf[float32],
	"float64": FieldOf[float64],
	"string":  FieldOf[string],
	"bool":    FieldOf[bool],
}

// LayoutTypes lists the type names NewField and ParseLayout accept.
func LayoutTypes() []string {
	names := lo.Keys(fieldConstructors)
	sort.Strings(names)
	return names
}

func NewField(key string, typeName string) (Field, error) {
	if key == "" {
		return Field{}, errors.Errorf(`NewField error: empty key for type "%s"`, typeName)
	}
	constructor, ok := fieldConstructors[typeName]
	if !ok {
		return Field{}, errors.Errorf(
			`NewField error: unknown type "%s" for key "%s", expected one of %v`,
			typeName, key, LayoutTypes(),
		)
	}
	return constructor(key, typeName), nil
}

// ParseLayout builds record fields from whitespace separated "key:type"
// pairs, e.g. "name:string age:int".
func ParseLayout(layout string) ([]Field, error) {
	pairs := strings.Fields(layout)
	if len(pairs) == 0 {
		return nil, errors.New("ParseLayout error: empty layout")
	}
	fields := make([]Field, 0, len(pairs))
	for _, pair := range pairs {
		key, typeName, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, errors.Errorf(`ParseLayout error: "%s" is not a key:type pair`, pair)
		}
		field, err := NewField(key, typeName)
		if err != nil {
			return nil, errors.Wrapf(err, `ParseLayout error reading "%s"`, pair)
		}
		fields = append(fields, field)
	}
	if err := CheckFields(fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// CheckFields rejects an empty field list and repeated keys.
func CheckFields(fields []Field) error {
	if len(fields) == 0 {
		return errors.New("CheckFields error: no fields")
	}
	seen := map[string]bool{}
	for _, field := range fields {
		if seen[field.Key] {
			return errors.Errorf(`CheckFields error: duplicated key "%s"`, field.Key)
		}
		seen[field.Key] = true
	}
	return nil
}
