package generation

import (
	"testing"

	"howtogen/internal/model"

	"github.com/stretchr/testify/assert"
)

func registryWith(structs ...model.Struct) *model.Package {
	pkg := model.NewPackage()
	for _, s := range structs {
		pkg.RegisterStruct(s)
	}
	return pkg
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		isStruct      bool
		isRestriction bool
		expectedKind  ResolutionKind
		expectedText  string
	}{
		{
			name:         "struct",
			isStruct:     true,
			expectedKind: ConstructibleStruct,
			expectedText: `new Orders\StructType\Item()`,
		},
		{
			name:          "struct restriction",
			isStruct:      true,
			isRestriction: true,
			expectedKind:  Scalar,
			expectedText:  "Item",
		},
		{
			name:          "plain restriction",
			isRestriction: true,
			expectedKind:  Scalar,
			expectedText:  "Item",
		},
		{
			name:         "plain value",
			expectedKind: Scalar,
			expectedText: "Item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := registryWith(model.Struct{
				Name:          "Item",
				PackagedName:  `Orders\StructType\Item`,
				IsStruct:      tt.isStruct,
				IsRestriction: tt.isRestriction,
			})

			resolution := Resolve(registry, "Item")

			assert.Equal(t, tt.expectedKind, resolution.Kind)
			assert.Equal(t, "Item", resolution.TypeName)
			assert.Equal(t, tt.expectedText, resolution.Text())
		})
	}
}

func TestResolveStructWithoutPackagedName(t *testing.T) {
	registry := registryWith(model.Struct{Name: "OrderRequest", IsStruct: true})

	resolution := Resolve(registry, "OrderRequest")

	assert.Equal(t, ConstructibleStruct, resolution.Kind)
	assert.Equal(t, "OrderRequest", resolution.PackagedName)
	assert.Equal(t, "new OrderRequest()", resolution.Text())
}

func TestResolveUnknownType(t *testing.T) {
	resolution := Resolve(registryWith(), "city")

	assert.Equal(t, NotFound, resolution.Kind)
	assert.Equal(t, "city", resolution.Text())
}

func TestArgumentList(t *testing.T) {
	registry := registryWith(model.Struct{
		Name:         "OrderRequest",
		PackagedName: `Orders\OrderRequest`,
		IsStruct:     true,
	})

	tests := []struct {
		name          string
		parameterType model.ParameterType
		expected      string
	}{
		{
			name:          "single unknown type",
			parameterType: model.SingleParameter("city"),
			expected:      "city",
		},
		{
			name:          "single struct",
			parameterType: model.SingleParameter("OrderRequest"),
			expected:      `new Orders\OrderRequest()`,
		},
		{
			name: "mixed mapping keeps declared order",
			parameterType: model.NamedParameters(
				model.Parameter{Name: "order", Type: "OrderRequest"},
				model.Parameter{Name: "note", Type: "string"},
			),
			expected: `new Orders\OrderRequest(), string`,
		},
		{
			name: "reversed mapping",
			parameterType: model.NamedParameters(
				model.Parameter{Name: "note", Type: "string"},
				model.Parameter{Name: "order", Type: "OrderRequest"},
			),
			expected: `string, new Orders\OrderRequest()`,
		},
		{
			name:          "absent",
			parameterType: model.ParameterType{},
			expected:      "",
		},
		{
			name:          "empty mapping",
			parameterType: model.NamedParameters(),
			expected:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := model.Method{Name: "Submit", ParameterType: tt.parameterType}
			assert.Equal(t, tt.expected, ArgumentList(registry, method))
		})
	}
}

func TestArgumentsCountMatchesMapping(t *testing.T) {
	params := []model.Parameter{
		{Name: "a", Type: "A"},
		{Name: "b", Type: "B"},
		{Name: "c", Type: "C"},
		{Name: "d", Type: "D"},
	}
	method := model.Method{Name: "Many", ParameterType: model.NamedParameters(params...)}

	resolutions := Arguments(registryWith(), method)

	assert.Len(t, resolutions, len(params))
	for i, resolution := range resolutions {
		assert.Equal(t, params[i].Type, resolution.TypeName)
	}
	assert.Equal(t, "A, B, C, D", ArgumentList(registryWith(), method))
}

func TestResolutionKindString(t *testing.T) {
	assert.Equal(t, "not-found", NotFound.String())
	assert.Equal(t, "scalar", Scalar.String())
	assert.Equal(t, "constructible-struct", ConstructibleStruct.String())
	assert.Equal(t, "ResolutionKind(7)", ResolutionKind(7).String())
}
