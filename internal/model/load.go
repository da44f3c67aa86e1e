package model

import (
	"io"
	"os"

	"howtogen/internal/errors"

	"gopkg.in/yaml.v3"
)

type packageDocument struct {
	Services []serviceDocument `yaml:"services"`
	Structs  []structDocument  `yaml:"structs"`
}

type serviceDocument struct {
	Name    string           `yaml:"name"`
	Methods []methodDocument `yaml:"methods"`
}

type methodDocument struct {
	Name       string        `yaml:"name"`
	Parameters ParameterType `yaml:"parameters"`
}

type structDocument struct {
	Name          string `yaml:"name"`
	PackagedName  string `yaml:"packaged_name"`
	IsStruct      bool   `yaml:"is_struct"`
	IsRestriction bool   `yaml:"is_restriction"`
}

// Reads the package model from the YAML file under given path
func LoadFile(path string) (*Package, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening model file %s", path)
	}
	defer file.Close()

	pkg, err := Load(file)
	if err != nil {
		return nil, errors.Wrapf(err, "loading model file %s", path)
	}
	return pkg, nil
}

// Reads the package model from given YAML stream. An empty stream yields an empty package.
func Load(r io.Reader) (*Package, error) {
	var document packageDocument
	if err := yaml.NewDecoder(r).Decode(&document); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decoding model")
	}

	pkg := NewPackage()
	for _, s := range document.Services {
		service := Service{Name: s.Name}
		for _, m := range s.Methods {
			service.Methods = append(service.Methods, Method{Name: m.Name, ParameterType: m.Parameters})
		}
		pkg.Services = append(pkg.Services, service)
	}
	for _, s := range document.Structs {
		pkg.RegisterStruct(Struct{
			Name:          s.Name,
			PackagedName:  s.PackagedName,
			IsStruct:      s.IsStruct,
			IsRestriction: s.IsRestriction,
		})
	}

	return pkg, nil
}

// UnmarshalYAML keeps the document order of mapping entries.
func (p *ParameterType) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*p = ParameterType{}
			return nil
		}
		*p = SingleParameter(node.Value)
		return nil
	case yaml.MappingNode:
		params := make([]Parameter, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return errors.Newf("line %d: parameter %q must have a scalar type name", value.Line, key.Value)
			}
			params = append(params, Parameter{Name: key.Value, Type: value.Value})
		}
		*p = NamedParameters(params...)
		return nil
	default:
		return errors.Newf("line %d: parameters must be a type name or a mapping of name to type", node.Line)
	}
}
