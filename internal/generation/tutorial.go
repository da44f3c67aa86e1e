package generation

import (
	"fmt"

	"howtogen/internal/annotation"
	"howtogen/internal/config"
	"howtogen/internal/errors"
	"howtogen/internal/model"
	"howtogen/internal/text"
)

// FileName is the base name of every tutorial artifact.
const FileName = "howtos"

// ErrAlreadyRendered is returned when a tutorial instance is rendered twice.
var ErrAlreadyRendered = errors.New("tutorial already rendered")

type Phase string

const (
	NamespaceDeclared Phase = "namespace-declared"
	HeaderAnnotated   Phase = "header-annotated"
	AutoloadAdded     Phase = "autoload-added"
	OptionsAnnotated  Phase = "options-annotated"
	OptionsAdded      Phase = "options-added"
	PerServiceContent Phase = "per-service-content"
)

type phase struct {
	name  Phase
	apply func(text.Buffer) text.Buffer
}

// Tutorial writes the PHP usage guide of a generated package.
// An instance renders exactly once.
type Tutorial struct {
	config   *config.Config
	pkg      *model.Package
	rendered bool
}

func NewTutorial(cfg *config.Config, pkg *model.Package) *Tutorial {
	return &Tutorial{config: cfg, pkg: pkg}
}

// Phases lists the phase names in execution order.
func (t *Tutorial) Phases() []Phase {
	names := make([]Phase, 0, 6)
	for _, p := range t.phases(config.WsdlSource{}) {
		names = append(names, p.name)
	}
	return names
}

func (t *Tutorial) Render() ([]byte, error) {
	if t.rendered {
		return nil, ErrAlreadyRendered
	}
	t.rendered = true

	wsdl, err := t.config.Wsdl(0)
	if err != nil {
		return nil, errors.Wrap(err, "rendering tutorial")
	}

	buffer := text.Buffer{}.Append("<?php", "")
	for _, p := range t.phases(wsdl) {
		buffer = p.apply(buffer)
	}
	return []byte(buffer.String()), nil
}

func (t *Tutorial) phases(wsdl config.WsdlSource) []phase {
	return []phase{
		{NamespaceDeclared, t.defineNamespace},
		{HeaderAnnotated, func(b text.Buffer) text.Buffer { return b.Append(headerAnnotation(wsdl).Render()...) }},
		{AutoloadAdded, addAutoload},
		{OptionsAnnotated, func(b text.Buffer) text.Buffer { return b.Append(annotation.New("Minimal options").Render()...) }},
		{OptionsAdded, func(b text.Buffer) text.Buffer { return addOptions(b, wsdl) }},
		{PerServiceContent, t.addContent},
	}
}

func (t *Tutorial) defineNamespace(b text.Buffer) text.Buffer {
	if t.config.PackageName == "" {
		return b
	}
	return b.Append(fmt.Sprintf("namespace %s;", t.config.PackageName), "")
}

func headerAnnotation(wsdl config.WsdlSource) annotation.Block {
	return annotation.New(
		"This file aims to show you how to use this generated package.",
		"In addition, the goal is to show which methods are available and the first needed parameter(s)",
		"You have to use an associative array such as:",
		"- the key must be a constant beginning with WSDL_ from AbstractSoapClientBase class (each generated ServiceType class extends this class)",
		"- the value must be the corresponding key value (each option matches a {@link http://www.php.net/manual/en/soapclient.soapclient.php} option)",
		"$options = array(",
		fmt.Sprintf("AbstractSoapClientBase::WSDL_URL => '%s',", wsdl.Name),
		"AbstractSoapClientBase::WSDL_TRACE => true,",
		"AbstractSoapClientBase::WSDL_LOGIN => 'you_secret_login',",
		"AbstractSoapClientBase::WSDL_PASSWORD => 'you_secret_password',",
		");",
		"etc...",
		"Then instantiate the ServiceType class such as:",
		"- $wsdlObject = new PackageNameWsdlClass($wsdl)",
	)
}

func addAutoload(b text.Buffer) text.Buffer {
	return b.Append("require_once __DIR__ . '/vendor/autoload.php';")
}

func addOptions(b text.Buffer, wsdl config.WsdlSource) text.Buffer {
	return b.Append(
		"$options = array(",
		text.Indent(fmt.Sprintf("AbstractSoapClientBase::WSDL_URL => '%s',", wsdl.Name), 1),
		");",
	)
}

func (t *Tutorial) addContent(b text.Buffer) text.Buffer {
	if t.pkg == nil {
		return b
	}
	for _, service := range t.pkg.Services {
		b = b.Append(annotation.New(fmt.Sprintf("Samples for %s ServiceType", service.Name)).Render()...)
		for _, method := range service.Methods {
			b = b.Append(exampleBlock(t.pkg, service, method)...)
		}
	}
	return b
}
