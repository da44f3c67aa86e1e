// The package describing the generated client package a tutorial is written for.
package model

// Package is the root of the model: ordered services plus the struct registry.
type Package struct {
	Services []Service
	Structs  map[string]Struct
}

type Service struct {
	Name    string
	Methods []Method
}

type Method struct {
	Name          string
	ParameterType ParameterType
}

type Struct struct {
	Name          string
	PackagedName  string
	IsStruct      bool
	IsRestriction bool
}

// Registry answers whether a type name is a known struct of the package.
type Registry interface {
	Struct(name string) (Struct, bool)
}

// Generates a new package with an empty struct registry
func NewPackage(services ...Service) *Package {
	return &Package{
		Services: services,
		Structs:  make(map[string]Struct),
	}
}

// Registers given struct under its name, replacing any previous entry
func (p *Package) RegisterStruct(s Struct) {
	if p.Structs == nil {
		p.Structs = make(map[string]Struct)
	}
	p.Structs[s.Name] = s
}

func (p *Package) Struct(name string) (Struct, bool) {
	s, found := p.Structs[name]
	return s, found
}
