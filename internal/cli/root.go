// Package cli implements the metastr command-line interface.
package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/violetpay-org/metastring/internal/config"
	"github.com/violetpay-org/metastring/internal/errors"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	successIcon = color.New(color.FgGreen).Sprint("✓")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	info = color.New(color.FgCyan).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
)

// rootOptions carries the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	noColor    bool

	logger *slog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "metastr",
		Short: "Pack identifier strings into 5 or 6 bits per character",
		Long: `metastr encodes, decodes and inspects packed identifier strings.

Identifiers drawn from lower-case letters, digits and a few special
characters are packed at 5 or 6 bits per character. The special character
pair comes from ~/.config/metastr/config.yaml unless overridden by flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/metastr/config.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log selection decisions to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewEncodeCmd(opts))
	rootCmd.AddCommand(NewDecodeCmd(opts))
	rootCmd.AddCommand(NewInspectCmd(opts))
	rootCmd.AddCommand(NewStatsCmd(opts))
	rootCmd.AddCommand(NewConfigCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// setup applies the persistent flags once they are parsed.
func (o *rootOptions) setup(stderr io.Writer) {
	if o.noColor {
		color.NoColor = true
	}

	logLevel := slog.LevelInfo
	if o.verbose {
		logLevel = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// log returns the configured logger, or one that discards when setup has
// not run.
func (o *rootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.logger
}

// loadConfig reads the config named by --config, which must exist, or the
// default config file, which may be absent.
// output.color applies unless --no-color was given.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.LoadOrDefault(config.NewPaths().ConfigFile)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Output.Color != nil && !o.noColor {
		color.NoColor = !*cfg.Output.Color
	}
	return cfg, nil
}

// configFile returns the path config commands operate on.
func (o *rootOptions) configFile() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.NewPaths().ConfigFile
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "metastr %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}

// printError prints err with its hint, if it carries one.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", errorIcon, err.Error())
	if hint := hintOf(err); hint != "" {
		fmt.Fprintf(w, "  %s\n", dim(hint))
	}
}

func hintOf(err error) string {
	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) && cliErr.Hint != "" {
		return cliErr.Hint
	}
	var hinted interface{ Hint() string }
	if stderrors.As(err, &hinted) {
		return hinted.Hint()
	}
	return ""
}

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

// printInfo prints a labelled line.
func printInfo(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %s: %v\n", dim(label), value)
}
