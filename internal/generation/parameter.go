package generation

import (
	"fmt"
	"strings"

	"howtogen/internal/model"
)

type ResolutionKind int

const (
	// The type name is not a registered struct.
	NotFound ResolutionKind = iota
	// The type is registered but cannot be constructed (plain value or restriction).
	Scalar
	// The type is a struct that the sample constructs with no arguments.
	ConstructibleStruct
)

func (k ResolutionKind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case Scalar:
		return "scalar"
	case ConstructibleStruct:
		return "constructible-struct"
	default:
		return fmt.Sprintf("ResolutionKind(%d)", int(k))
	}
}

// Resolution is the outcome of looking up a parameter type in the struct registry.
type Resolution struct {
	Kind         ResolutionKind
	TypeName     string
	PackagedName string
}

// Resolve decides how a parameter of given type is passed in a sample call.
func Resolve(registry model.Registry, typeName string) Resolution {
	s, found := registry.Struct(typeName)
	switch {
	case !found:
		return Resolution{Kind: NotFound, TypeName: typeName}
	case s.IsStruct && !s.IsRestriction:
		packagedName := s.PackagedName
		if packagedName == "" {
			packagedName = typeName
		}
		return Resolution{Kind: ConstructibleStruct, TypeName: typeName, PackagedName: packagedName}
	default:
		return Resolution{Kind: Scalar, TypeName: typeName}
	}
}

// Text returns the PHP argument for the resolution.
func (r Resolution) Text() string {
	if r.Kind == ConstructibleStruct {
		return fmt.Sprintf("new %s()", r.PackagedName)
	}
	return r.TypeName
}

// Resolves every declared parameter of the method, in declaration order
func Arguments(registry model.Registry, method model.Method) []Resolution {
	types := method.ParameterType.Types()
	resolutions := make([]Resolution, 0, len(types))
	for _, typeName := range types {
		resolutions = append(resolutions, Resolve(registry, typeName))
	}
	return resolutions
}

// ArgumentList renders the call arguments of the method separated by ", ".
func ArgumentList(registry model.Registry, method model.Method) string {
	resolutions := Arguments(registry, method)
	texts := make([]string, 0, len(resolutions))
	for _, resolution := range resolutions {
		texts = append(texts, resolution.Text())
	}
	return strings.Join(texts, ", ")
}
