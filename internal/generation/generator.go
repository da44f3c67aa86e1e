package generation

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"howtogen/internal/config"
	"howtogen/internal/errors"
	"howtogen/internal/logger"
	"howtogen/internal/model"

	"go.uber.org/zap"
)

// ErrUnknownDialect marks a configured dialect that has no renderer.
var ErrUnknownDialect = errors.New("unknown dialect")

type renderer interface {
	Render() ([]byte, error)
}

type dialect struct {
	extension string
	newRender func(*config.Config, *model.Package) renderer
}

var dialects = map[string]dialect{
	"php": {
		extension: "php",
		newRender: func(cfg *config.Config, pkg *model.Package) renderer { return NewTutorial(cfg, pkg) },
	},
	"go": {
		extension: "go",
		newRender: func(cfg *config.Config, pkg *model.Package) renderer { return NewGoSample(cfg, pkg) },
	},
}

// Artifact is one rendered tutorial file.
type Artifact struct {
	Dialect  string
	FileName string
	Content  []byte
}

type Generator struct {
	Package *model.Package
	Config  *config.Config
	log     *zap.SugaredLogger
}

func NewGenerator(cfg *config.Config, pkg *model.Package) Generator {
	return Generator{
		Package: pkg,
		Config:  cfg,
		log:     logger.Named("generation"),
	}
}

// RenderDialect renders a single dialect with a fresh renderer.
func (generator *Generator) RenderDialect(name string) (Artifact, error) {
	d, found := dialects[name]
	if !found {
		err := errors.Mark(errors.Newf("dialect %q is not supported", name), ErrUnknownDialect)
		return Artifact{}, errors.WithHint(err, "supported dialects are php and go")
	}

	generator.log.Debugw("Rendering tutorial", "dialect", name)
	content, err := d.newRender(generator.Config, generator.Package).Render()
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Dialect:  name,
		FileName: fmt.Sprintf("%s.%s", FileName, d.extension),
		Content:  content,
	}, nil
}

// Render renders every configured dialect. Nothing is returned unless all of them succeed.
func (generator *Generator) Render() ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(generator.Config.Dialects))
	for _, name := range generator.Config.Dialects {
		artifact, err := generator.RenderDialect(name)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// Generate renders all dialects and writes them under the configured destination.
// It returns the paths of the written files.
func (generator *Generator) Generate() ([]string, error) {
	artifacts, err := generator.Render()
	if err != nil {
		return nil, err
	}

	path := generator.Config.Destination
	err = os.MkdirAll(path, os.ModePerm)
	if err != nil && !errors.Is(err, fs.ErrExist) {
		return nil, errors.Wrapf(err, "creating destination %s", path)
	}

	written := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		filePath := filepath.Join(path, artifact.FileName)
		if err := os.WriteFile(filePath, artifact.Content, 0644); err != nil {
			return written, errors.Wrapf(err, "writing %s", filePath)
		}
		generator.log.Infow("Tutorial written", "dialect", artifact.Dialect, "path", filePath)
		written = append(written, filePath)
	}
	return written, nil
}
