// Package cli wires the euler command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/imorrison/euler/internal/calculation"
	"github.com/imorrison/euler/internal/config"
	"github.com/imorrison/euler/internal/domain"
	"github.com/imorrison/euler/internal/logging"
	"github.com/imorrison/euler/internal/output"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	format     string
	logLevel   string
}

// NewRootCommand builds the euler command. Results go to stdout, logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "euler",
		Short:         "Run Project Euler style arithmetic exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("output format (%v)", output.AvailableFormatterNames()))
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newListCommand(),
		newRunCommand(opts),
		newMultiplesCommand(opts),
		newFibonacciCommand(opts),
		newEvenFibonacciCommand(opts),
	)
	return cmd
}

// loadConfiguration reads --config when given, otherwise the built-in defaults.
func (o *rootOptions) loadConfiguration() (*domain.Configuration, error) {
	if o.configFile == "" {
		return config.DefaultConfiguration(), nil
	}
	return config.NewInputParser().LoadFromFile(o.configFile)
}

// newEngine builds an engine logging to the command's stderr.
func (o *rootOptions) newEngine(cmd *cobra.Command, cfg *domain.Configuration) (*calculation.Engine, error) {
	name := cfg.LogLevel
	if o.logLevel != "" {
		name = o.logLevel
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewEngine()
	engine.SetLogger(logging.New(cmd.ErrOrStderr(), level).With("command", cmd.Name()))
	return engine, nil
}

// run validates cfg, solves the named problems and writes the report.
func (o *rootOptions) run(cmd *cobra.Command, cfg *domain.Configuration, names []string) error {
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	engine, err := o.newEngine(cmd, cfg)
	if err != nil {
		return err
	}
	report, err := engine.RunProblems(cmd.Context(), cfg, names)
	if err != nil {
		return err
	}
	format := cfg.OutputFormat
	if o.format != "" {
		format = o.format
	}
	return output.GenerateReport(cmd.OutOrStdout(), report, format)
}

// Execute runs the command tree and prints any error to stderr.
func Execute(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
