package generation

import (
	"bytes"
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"howtogen/internal/annotation"
	"howtogen/internal/config"
	"howtogen/internal/errors"
	"howtogen/internal/model"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

const goClientAlias = "client"

// GoSample writes the usage guide as a Go program calling the generated client.
// An instance renders exactly once.
type GoSample struct {
	config   *config.Config
	pkg      *model.Package
	rendered bool
}

func NewGoSample(cfg *config.Config, pkg *model.Package) *GoSample {
	return &GoSample{config: cfg, pkg: pkg}
}

func (s *GoSample) Render() ([]byte, error) {
	if s.rendered {
		return nil, ErrAlreadyRendered
	}
	s.rendered = true

	wsdl, err := s.config.Wsdl(0)
	if err != nil {
		return nil, errors.Wrap(err, "rendering go sample")
	}
	importPath, err := s.config.GoImportPath()
	if err != nil {
		return nil, errors.Wrap(err, "rendering go sample")
	}

	file := jen.NewFile("main")
	file.ImportAlias(importPath, goClientAlias)
	file.HeaderComment("Code generated by howtogen. DO NOT EDIT.")
	addComments(file.Group, goHeaderAnnotation(wsdl))

	file.Func().Id("main").Params().BlockFunc(func(g *jen.Group) {
		addComments(g, annotation.New("Minimal options"))
		g.Id("options").Op(":=").Map(jen.String()).String().Values(jen.Dict{
			jen.Qual(importPath, "WsdlURL"): jen.Lit(wsdl.Name),
		})
		g.Id("_").Op("=").Id("options")

		if s.pkg == nil {
			return
		}
		for _, service := range s.pkg.Services {
			addComments(g, annotation.New(fmt.Sprintf("Samples for %s ServiceType", service.Name)))
			for _, method := range service.Methods {
				s.writeSample(g, importPath, service, method)
			}
		}
	})

	buffer := &bytes.Buffer{}
	if err := file.Render(buffer); err != nil {
		return nil, errors.Wrap(err, "formatting go sample")
	}
	return buffer.Bytes(), nil
}

func (s *GoSample) writeSample(g *jen.Group, importPath string, service model.Service, method model.Method) {
	variable := goIdentifier(strcase.ToLowerCamel(service.Name), "service")

	g.BlockFunc(func(g *jen.Group) {
		addComments(g, annotation.New(fmt.Sprintf("Sample call for %s operation/method", method.Name)))
		g.Id(variable).Op(":=").Qual(importPath, "New"+strcase.ToCamel(service.Name)).Call()
		g.If(
			jen.Id(variable).Dot(strcase.ToCamel(method.Name)).CallFunc(func(g *jen.Group) {
				for _, resolution := range Arguments(s.pkg, method) {
					g.Add(goArgument(importPath, resolution))
				}
			}),
		).Block(
			jen.Qual("fmt", "Println").Call(jen.Id(variable).Dot("GetResult").Call()),
		).Else().Block(
			jen.Qual("fmt", "Println").Call(jen.Id(variable).Dot("GetLastError").Call()),
		)
	})
}

func goArgument(importPath string, resolution Resolution) *jen.Statement {
	if resolution.Kind == ConstructibleStruct {
		return jen.Op("&").Qual(importPath, goTypeName(resolution)).Values()
	}
	return jen.Id(goIdentifier(strcase.ToLowerCamel(resolution.TypeName), "value"))
}

// The Go type name is the last segment of the packaged name.
func goTypeName(resolution Resolution) string {
	name := resolution.PackagedName
	if name == "" {
		name = resolution.TypeName
	}
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return goIdentifier(strcase.ToCamel(name), "Value")
}

func goIdentifier(name string, fallback string) string {
	if name == "" || !token.IsIdentifier(name) {
		if token.IsKeyword(name) {
			return name + strcase.ToCamel(fallback)
		}
		return fallback
	}
	// Predeclared names such as string or nil are not usable as values.
	if types.Universe.Lookup(name) != nil {
		return name + strcase.ToCamel(fallback)
	}
	return name
}

func addComments(g *jen.Group, block annotation.Block) {
	for _, line := range block.Lines() {
		g.Comment(line)
	}
}

func goHeaderAnnotation(wsdl config.WsdlSource) annotation.Block {
	return annotation.New(
		"This file aims to show you how to use this generated package.",
		"In addition, the goal is to show which methods are available and the first needed parameter(s)",
		"Options are passed as a map keyed by the Wsdl* constants of the client package such as:",
		fmt.Sprintf("client.WsdlURL: %q,", wsdl.Name),
		`client.WsdlTrace: "true",`,
		`client.WsdlLogin: "your_secret_login",`,
		`client.WsdlPassword: "your_secret_password",`,
		"Then instantiate the service type with its New function.",
	)
}
