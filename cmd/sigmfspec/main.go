// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

// sigmfspec renders the SigMF JSON Schemas into the specification document.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/woozymasta/sigmfspec"
	"github.com/woozymasta/sigmfspec/internal/logger"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/sigmfspec"
	_buildTime string
)

// cliOptions describes sigmfspec CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Build   buildCommand   `command:"build" description:"Render LaTeX, PDF and HTML artifacts"`
	TeX     texCommand     `command:"tex" description:"Render LaTeX source only"`
	CSS     cssCommand     `command:"css" description:"Print the two-pane HTML stylesheet"`
}

// inputFlags groups schema input selection flags.
type inputFlags struct {
	ConfigPath string `short:"c" long:"config" description:"Path to YAML config file"`
	InputDir   string `short:"i" long:"input" description:"Directory holding schemas and prose (default: .)"`
	Prose      string `short:"p" long:"prose" description:"Static prose file relative to input dir (default: additional_content.md)"`
	Title      string `short:"T" long:"title" description:"Format name used in headings and footer (default: SigMF)"`
	Logo       string `long:"logo" description:"Logo image referenced by the title figure"`
}

// exampleFlags groups example payload listing flags.
type exampleFlags struct {
	Mode   string `short:"e" long:"examples" description:"Add example payload listings" choice:"none" choice:"required" choice:"all"`
	Format string `long:"example-format" description:"Example listing format" choice:"json" choice:"yaml"`
}

// logFlags groups logger flags.
type logFlags struct {
	Level  string `long:"log-level" description:"Minimum log level (default: info)" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	Format string `long:"log-format" description:"Log output format (default: console)" choice:"console" choice:"json"`
}

// config applies explicit logging flags over the logger defaults.
func (options logFlags) config() logger.Config {
	cfg := logger.DefaultConfig()
	setIfNotEmpty(&cfg.Level, options.Level)
	setIfNotEmpty(&cfg.Format, options.Format)
	return cfg
}

// buildCommand runs the full pipeline.
type buildCommand struct {
	runner *cliRunner

	InputFlags   inputFlags   `group:"Input"`
	ExampleFlags exampleFlags `group:"Examples"`
	LogFlags     logFlags     `group:"Logging"`

	OutputDir string `short:"o" long:"output" description:"Directory receiving artifacts (default: .)"`
	JobName   string `short:"j" long:"job" description:"Artifact base name (default: sigmf-spec)"`
	Compiler  string `long:"compiler" description:"LaTeX compiler command (default: pdflatex)"`
	Converter string `long:"converter" description:"HTML converter command (default: pandoc)"`
	SkipPDF   bool   `long:"skip-pdf" description:"Do not run the LaTeX compiler"`
	SkipHTML  bool   `long:"skip-html" description:"Do not write the stylesheet or run the converter"`
}

// Execute runs build subcommand.
func (command *buildCommand) Execute(_ []string) error {
	cfg, err := command.InputFlags.config(command.ExampleFlags)
	if err != nil {
		return err
	}

	setIfNotEmpty(&cfg.OutputDir, command.OutputDir)
	setIfNotEmpty(&cfg.JobName, command.JobName)
	setIfNotEmpty(&cfg.Compiler, command.Compiler)
	setIfNotEmpty(&cfg.Converter, command.Converter)
	cfg.SkipPDF = cfg.SkipPDF || command.SkipPDF
	cfg.SkipHTML = cfg.SkipHTML || command.SkipHTML

	return command.runner.runBuild(cfg, command.LogFlags)
}

// texCommand renders the LaTeX source to stdout or file.
type texCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output .tex file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	InputFlags   inputFlags   `group:"Input"`
	ExampleFlags exampleFlags `group:"Examples"`
	LogFlags     logFlags     `group:"Logging"`
}

// Execute runs tex subcommand.
func (command *texCommand) Execute(_ []string) error {
	cfg, err := command.InputFlags.config(command.ExampleFlags)
	if err != nil {
		return err
	}

	return command.runner.runTeX(cfg, command.LogFlags, command.Args.Output)
}

// cssCommand exports the embedded stylesheet.
type cssCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output stylesheet path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs css subcommand.
func (command *cssCommand) Execute(_ []string) error {
	return command.runner.writeOutput(sigmfspec.Stylesheet(), command.Args.Output, "stylesheet")
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	ctx         context.Context
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runContext(context.Background(), args, stdout, stderr)
}

// runContext executes CLI logic with a cancelable context.
func runContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "sigmfspec"
	}

	runner := cliRunner{
		ctx:         ctx,
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runBuild executes the full pipeline and prints produced artifact paths.
func (runner *cliRunner) runBuild(cfg sigmfspec.Config, logOptions logFlags) error {
	log, err := runner.logger(logOptions)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	artifacts, err := sigmfspec.Build(runner.ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	for _, path := range []string{artifacts.TeX, artifacts.PDF, artifacts.Stylesheet, artifacts.HTML} {
		if path == "" {
			continue
		}

		_, _ = fmt.Fprintln(runner.stdout, path)
	}

	return nil
}

// runTeX renders the LaTeX source and writes it to stdout or file.
func (runner *cliRunner) runTeX(cfg sigmfspec.Config, logOptions logFlags, outputPath string) error {
	log, err := runner.logger(logOptions)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	doc, meta, err := sigmfspec.Render(runner.ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	text, err := doc.LaTeX(meta)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return runner.writeOutput(text, outputPath, "latex")
}

// writeOutput writes text to stdout when path is empty, otherwise to the file.
func (runner *cliRunner) writeOutput(text, path, what string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, path, err)
	}

	return nil
}

// logger builds a zap logger writing to the runner stderr.
func (runner *cliRunner) logger(options logFlags) (*zap.Logger, error) {
	log, err := logger.New(options.config(), runner.stderr)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return log, nil
}

// config loads the optional config file and applies explicit flags over it.
func (input inputFlags) config(examples exampleFlags) (sigmfspec.Config, error) {
	cfg := sigmfspec.DefaultConfig()
	if path := strings.TrimSpace(input.ConfigPath); path != "" {
		loaded, err := sigmfspec.LoadConfig(path)
		if err != nil {
			return sigmfspec.Config{}, err
		}

		cfg = loaded
	}

	setIfNotEmpty(&cfg.InputDir, input.InputDir)
	setIfNotEmpty(&cfg.Prose, input.Prose)
	setIfNotEmpty(&cfg.Title, input.Title)
	setIfNotEmpty(&cfg.Logo, input.Logo)
	if examples.Mode != "" {
		cfg.Examples = sigmfspec.ExampleMode(examples.Mode)
	}

	if examples.Format != "" {
		cfg.ExampleFormat = sigmfspec.ExampleFormat(examples.Format)
	}

	return cfg, nil
}

func setIfNotEmpty(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Build.runner = runner
	options.TeX.runner = runner
	options.CSS.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"build": strings.TrimSpace(fmt.Sprintf(`
Render the specification from the schema directory.
Writes <job>.tex, runs the LaTeX compiler twice (failures are reported and ignored),
writes main.css and converts the source to <job>.html.

Examples:
> $ %s build
> $ %s build -i sigmf -o out --skip-pdf
`, programName, programName)),
		"tex": strings.TrimSpace(fmt.Sprintf(`
Render LaTeX source only; no external tools are run.

Examples:
> $ %s tex > sigmf-spec.tex
> $ %s tex -i sigmf --examples required sigmf-spec.tex
`, programName, programName)),
		"css": strings.TrimSpace(fmt.Sprintf(`
Print the stylesheet used by the HTML view.

Examples:
> $ %s css > main.css
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(w io.Writer) {
	_, _ = fmt.Fprintf(w, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
