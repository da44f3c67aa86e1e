package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"howtogen/internal/config"
	"howtogen/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = `
services:
  - name: Weather
    methods:
      - name: GetTemperature
        parameters: city
  - name: Orders
    methods:
      - name: Submit
        parameters:
          order: OrderRequest
          note: string
structs:
  - name: OrderRequest
    packaged_name: Orders\OrderRequest
    is_struct: true
`

func writeModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testModel), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	stdout := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestPrint(t *testing.T) {
	output, err := execute(t, "",
		"print",
		"--model", writeModel(t),
		"--package-name", "Shop",
		"--wsdl", "https://example.com/shop.wsdl",
		"--wsdl", "https://example.com/ignored.wsdl",
	)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "<?php\n\nnamespace Shop;\n"))
	assert.Contains(t, output, "AbstractSoapClientBase::WSDL_URL => 'https://example.com/shop.wsdl',")
	assert.NotContains(t, output, "ignored.wsdl")
	assert.Contains(t, output, `if ($orders->Submit(new Orders\OrderRequest(), string) !== false) {`)
	assert.Less(t, strings.Index(output, "Samples for Weather"), strings.Index(output, "Samples for Orders"))
}

func TestPrintGoDialect(t *testing.T) {
	output, err := execute(t, "",
		"print", "--as", "go",
		"--model", writeModel(t),
		"--wsdl", "https://example.com/shop.wsdl",
		"--go-import-path", "example.com/shop/client",
	)
	require.NoError(t, err)

	assert.Contains(t, output, "package main")
	assert.Contains(t, output, "if orders.Submit(&client.OrderRequest{}, stringValue) {")
}

func TestPrintWithoutWsdl(t *testing.T) {
	output, err := execute(t, "", "print", "--model", writeModel(t))

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingWsdl))
	assert.Empty(t, output)
}

func TestMissingModelFlag(t *testing.T) {
	_, err := execute(t, "", "print", "--wsdl", "x.wsdl")
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestGenerateWithConfigFile(t *testing.T) {
	directory := t.TempDir()
	destination := filepath.Join(directory, "out")
	configPath := filepath.Join(directory, "howtogen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
package_name: Shop
destination: `+destination+`
dialects: [php, go]
go:
  import_path: example.com/shop/client
wsdls:
  - name: https://example.com/shop.wsdl
`), 0644))

	output, err := execute(t, "", "generate", "--config", configPath, "--model", writeModel(t))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(destination, "howtos.php")+"\n"+filepath.Join(destination, "howtos.go")+"\n", output)
	assert.FileExists(t, filepath.Join(destination, "howtos.php"))
	assert.FileExists(t, filepath.Join(destination, "howtos.go"))
}

func TestGenerateAsksBeforeCleaning(t *testing.T) {
	destination := t.TempDir()
	stale := filepath.Join(destination, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))
	model := writeModel(t)
	args := []string{"generate", "--model", model, "--wsdl", "a.wsdl", "--destination", destination}

	_, err := execute(t, "n\n", args...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotConfirmed))
	assert.FileExists(t, stale)
	assert.NoFileExists(t, filepath.Join(destination, "howtos.php"))

	_, err = execute(t, "y\n", args...)
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(destination, "howtos.php"))

	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))
	_, err = execute(t, "", append(args, "--force-clean-output")...)
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
}

func TestGenerateFailureKeepsDestination(t *testing.T) {
	destination := t.TempDir()
	stale := filepath.Join(destination, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	_, err := execute(t, "",
		"generate", "--model", writeModel(t), "--destination", destination, "--force-clean-output",
	)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingWsdl))
	assert.FileExists(t, stale)
}

func TestPrepareDestinationCreatesDirectory(t *testing.T) {
	destination := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, prepareDestination(destination, false, strings.NewReader(""), &bytes.Buffer{}))
	assert.DirExists(t, destination)
}
