package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"howtogen/internal"
	"howtogen/internal/config"
	"howtogen/internal/errors"
	"howtogen/internal/generation"
	"howtogen/internal/logger"
	"howtogen/internal/model"
	"howtogen/internal/watch"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type options struct {
	configFile string
	modelFile  string
	wsdls      []string
	verbose    bool
	jsonLogs   bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "howtogen",
		Short: "Write the usage guide of a generated SOAP client package",
		Long: `Write the usage guide of a generated SOAP client package.

The guide shows, for every operation of every service, how to build the
service, call the operation with correctly shaped arguments and branch on
success or failure.

Examples:
  howtogen generate --model model.yaml --wsdl https://example.com/orders.wsdl
  howtogen print --model model.yaml --config howtogen.yaml --as go
  howtogen watch --model model.yaml --config howtogen.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(opts.verbose, opts.jsonLogs); err != nil {
				return errors.Wrap(err, "initializing logger")
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Path of a YAML or TOML configuration file.")
	flags.StringVar(&opts.modelFile, "model", "", "Path of the YAML package model.")
	flags.StringArrayVar(&opts.wsdls, "wsdl", nil, "WSDL source of the package. May be repeated, the first one is used in the guide.")
	flags.String("package-name", "", "Namespace of the generated package.")
	flags.String("destination", "", "Directory receiving the guide files. Default: ./output/")
	flags.StringSlice("dialect", nil, "Dialects to render (php, go). Default: php")
	flags.String("go-import-path", "", "Import path of the generated Go client, used by the go dialect.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging.")
	flags.BoolVar(&opts.jsonLogs, "log-json", false, "Log as JSON.")

	root.AddCommand(newGenerateCommand(opts))
	root.AddCommand(newPrintCommand(opts))
	root.AddCommand(newWatchCommand(opts))
	return root
}

func newGenerateCommand(opts *options) *cobra.Command {
	var forceClean bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the guide files into the destination directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pkg, err := loadInputs(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("force-clean-output") {
				cfg.ForceClean = forceClean
			}
			return generate(cmd, cfg, pkg)
		},
	}
	cmd.Flags().BoolVar(&forceClean, "force-clean-output", false, "Clean a non-empty destination without asking.")
	return cmd
}

func newPrintCommand(opts *options) *cobra.Command {
	var dialect string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Write a single guide to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pkg, err := loadInputs(cmd, opts)
			if err != nil {
				return err
			}
			generator := generation.NewGenerator(cfg, pkg)
			artifact, err := generator.RenderDialect(dialect)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(artifact.Content)
			return err
		},
	}
	cmd.Flags().StringVar(&dialect, "as", "php", "Dialect to print (php, go).")
	return cmd
}

func newWatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the guide files whenever the model or config changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regenerate := func() error {
				cfg, pkg, err := loadInputs(cmd, opts)
				if err != nil {
					return err
				}
				cfg.ForceClean = true
				return generate(cmd, cfg, pkg)
			}
			if err := regenerate(); err != nil {
				return err
			}

			paths := []string{opts.modelFile}
			if opts.configFile != "" {
				paths = append(paths, opts.configFile)
			}
			watcher, err := watch.New(paths)
			if err != nil {
				return err
			}
			defer watcher.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			logger.Logger.Infow("Watching for changes", "files", paths)
			return watcher.Run(ctx, regenerate)
		},
	}
}

func loadInputs(cmd *cobra.Command, opts *options) (*config.Config, *model.Package, error) {
	if opts.modelFile == "" {
		return nil, nil, errors.WithHint(errors.New("no model file given"), "pass --model path/to/model.yaml")
	}

	v, err := config.NewViper(opts.configFile)
	if err != nil {
		return nil, nil, err
	}
	bindFlags(v, cmd.Flags())

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return nil, nil, err
	}
	if len(opts.wsdls) > 0 {
		cfg.Wsdls = make([]config.WsdlSource, 0, len(opts.wsdls))
		for _, name := range opts.wsdls {
			cfg.Wsdls = append(cfg.Wsdls, config.WsdlSource{Name: name})
		}
	}

	pkg, err := model.LoadFile(opts.modelFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Logger.Debugw("Inputs loaded",
		"model", opts.modelFile,
		"services", len(pkg.Services),
		"structs", len(pkg.Structs),
		"wsdls", len(cfg.Wsdls))
	return cfg, pkg, nil
}

var flagKeys = map[string]string{
	"package-name":   "package_name",
	"destination":    "destination",
	"dialect":        "dialects",
	"go-import-path": "go.import_path",
}

// Flags only override the config when set on the command line.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for flag, key := range flagKeys {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			internal.PanicOnError(v.BindPFlag(key, f))
		}
	}
}

func generate(cmd *cobra.Command, cfg *config.Config, pkg *model.Package) error {
	generator := generation.NewGenerator(cfg, pkg)

	// Render before touching the destination so a failure leaves it intact.
	if _, err := generator.Render(); err != nil {
		return err
	}
	if err := prepareDestination(cfg.Destination, cfg.ForceClean, cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
		return err
	}

	written, err := generator.Generate()
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
