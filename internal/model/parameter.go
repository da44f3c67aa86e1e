package model

// Parameter is one named entry of a multi-parameter operation.
type Parameter struct {
	Name string
	Type string
}

// ParameterType is either absent, a single type name or an ordered list of named parameters.
type ParameterType struct {
	single  string
	named   []Parameter
	mapping bool
}

func SingleParameter(typeName string) ParameterType {
	return ParameterType{single: typeName}
}

func NamedParameters(params ...Parameter) ParameterType {
	return ParameterType{named: params, mapping: true}
}

func (p ParameterType) IsMapping() bool {
	return p.mapping
}

// An empty mapping is treated the same as a missing parameter type.
func (p ParameterType) IsAbsent() bool {
	if p.mapping {
		return len(p.named) == 0
	}
	return p.single == ""
}

func (p ParameterType) Parameters() []Parameter {
	return p.named
}

// Types returns the declared type names in declaration order.
func (p ParameterType) Types() []string {
	if p.IsAbsent() {
		return nil
	}
	if !p.mapping {
		return []string{p.single}
	}

	types := make([]string, 0, len(p.named))
	for _, param := range p.named {
		types = append(types, param.Type)
	}
	return types
}
