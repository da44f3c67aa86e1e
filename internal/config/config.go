// Package config holds the generator configuration loaded through viper.
package config

import (
	"strings"

	"howtogen/internal/errors"

	"github.com/spf13/viper"
)

var (
	// ErrMissingWsdl marks a request for a WSDL source that was not configured.
	ErrMissingWsdl = errors.New("missing wsdl source")
	// ErrMissingImportPath marks a go dialect run without any client import path.
	ErrMissingImportPath = errors.New("missing go import path")
)

type WsdlSource struct {
	Name string `mapstructure:"name"`
}

type GoConfig struct {
	ImportPath string `mapstructure:"import_path"`
}

type Config struct {
	PackageName string       `mapstructure:"package_name"`
	Destination string       `mapstructure:"destination"`
	Wsdls       []WsdlSource `mapstructure:"wsdls"`
	Dialects    []string     `mapstructure:"dialects"`
	Go          GoConfig     `mapstructure:"go"`
	ForceClean  bool         `mapstructure:"force_clean"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("package_name", "")
	v.SetDefault("destination", "./output/")
	v.SetDefault("dialects", []string{"php"})
	v.SetDefault("go.import_path", "")
	v.SetDefault("force_clean", false)
}

// NewViper prepares a viper instance with defaults and HOWTOGEN_ environment
// binding. When configFile is not empty it is read as well.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("HOWTOGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", configFile)
		}
	}

	return v, nil
}

func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	return &config, nil
}

// Wsdl returns the WSDL source at given index.
func (c *Config) Wsdl(index int) (WsdlSource, error) {
	if index < 0 || index >= len(c.Wsdls) {
		err := errors.Mark(errors.Newf("no wsdl source at index %d (%d configured)", index, len(c.Wsdls)), ErrMissingWsdl)
		return WsdlSource{}, errors.WithHint(err, "pass at least one --wsdl or list it under `wsdls` in the config file")
	}
	return c.Wsdls[index], nil
}

// GoImportPath returns the import path of the Go client package, falling back
// to the lowercased package name with namespace separators turned into slashes.
func (c *Config) GoImportPath() (string, error) {
	if c.Go.ImportPath != "" {
		return c.Go.ImportPath, nil
	}
	if c.PackageName != "" {
		return strings.ToLower(strings.ReplaceAll(c.PackageName, `\`, "/")), nil
	}
	err := errors.Mark(errors.New("no go import path and no package name configured"), ErrMissingImportPath)
	return "", errors.WithHint(err, "set go.import_path in the config file or HOWTOGEN_GO_IMPORT_PATH")
}
