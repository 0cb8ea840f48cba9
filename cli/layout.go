package cli

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"linescan/scan"
)

type (
	LayoutFile struct {
		Fields []LayoutField `yaml:"fields"`
	}
	LayoutField struct {
		Key  string `yaml:"key"`
		Type string `yaml:"type"`
	}
)

func LoadLayout(path string) ([]scan.Field, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `LoadLayout error reading file "%s"`, path)
	}
	fields, err := ParseLayoutYAML(bs)
	if err != nil {
		return nil, errors.Wrapf(err, `LoadLayout error parsing file "%s"`, path)
	}
	return fields, nil
}

func ParseLayoutYAML(bs []byte) ([]scan.Field, error) {
	layoutFile := LayoutFile{}
	if err := yaml.Unmarshal(bs, &layoutFile); err != nil {
		return nil, errors.Wrap(err, "ParseLayoutYAML error unmarshalling")
	}
	fields := make([]scan.Field, 0, len(layoutFile.Fields))
	for i, layoutField := range layoutFile.Fields {
		field, err := scan.NewField(layoutField.Key, layoutField.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "ParseLayoutYAML error reading field %d", i)
		}
		fields = append(fields, field)
	}
	if err := scan.CheckFields(fields); err != nil {
		return nil, err
	}
	return fields, nil
}
