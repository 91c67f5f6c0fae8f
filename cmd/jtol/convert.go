package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/kzachmann/VSJumpToLine/internal/diag"
	"github.com/kzachmann/VSJumpToLine/internal/engine"
	"github.com/kzachmann/VSJumpToLine/internal/logger"
	"github.com/kzachmann/VSJumpToLine/internal/project"
	"github.com/kzachmann/VSJumpToLine/internal/report"
	"github.com/kzachmann/VSJumpToLine/internal/version"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <file>",
	Short: "Convert a captured tool-output file",
	Long: `Convert the captured output of a build or analysis tool into the
canonical path(line,column): notation, grouped by severity.

Defaults for the flags below can be preset in a jtol.toml file in the
current directory ([convert] section); explicit flags win.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// init registers the convert flags: path resolution, printer options,
// multi-line stitching, deduplication and the report formats.
func init() {
	convertCmd.Flags().StringP("dir", "d", "", "working directory searched to resolve bare filenames (can be slow)")
	convertCmd.Flags().StringP("prefix", "p", "", "prefix added to every output line")
	convertCmd.Flags().StringP("multi", "m", "off", "multi-line mode (off|before|behind|both)")
	convertCmd.Flags().BoolP("suppress", "s", false, "suppress identical messages")
	convertCmd.Flags().BoolP("compact", "c", false, "don't add a newline between messages")
	convertCmd.Flags().String("format", "text", "report format (text|json|sarif)")
	convertCmd.Flags().String("export", "", "write a binary result archive to this file")
}

// runConvert executes the convert command: it merges flag and config
// values, validates the paths, runs the engine pass over the input
// file (with a wait spinner on a terminal) and renders the report.
func runConvert(cmd *cobra.Command, args []string) error {
	// Failures past flag parsing are not usage errors.
	cmd.SilenceUsage = true

	inputPath := filepath.Clean(args[0])

	workingDir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}
	prefix, err := cmd.Flags().GetString("prefix")
	if err != nil {
		return fmt.Errorf("failed to get prefix flag: %w", err)
	}
	multiStr, err := cmd.Flags().GetString("multi")
	if err != nil {
		return fmt.Errorf("failed to get multi flag: %w", err)
	}
	suppress, err := cmd.Flags().GetBool("suppress")
	if err != nil {
		return fmt.Errorf("failed to get suppress flag: %w", err)
	}
	compact, err := cmd.Flags().GetBool("compact")
	if err != nil {
		return fmt.Errorf("failed to get compact flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	exportPath, err := cmd.Flags().GetString("export")
	if err != nil {
		return fmt.Errorf("failed to get export flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	// jtol.toml provides defaults only for flags the user did not set.
	defaults, err := project.LoadConfig(project.ConfigFileName)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("dir") && defaults.Dir != "" {
		workingDir = defaults.Dir
	}
	if !cmd.Flags().Changed("prefix") && defaults.Prefix != "" {
		prefix = defaults.Prefix
	}
	if !cmd.Flags().Changed("multi") && defaults.Multi != "" {
		multiStr = defaults.Multi
	}
	if !cmd.Flags().Changed("suppress") && defaults.Suppress {
		suppress = true
	}
	if !cmd.Flags().Changed("compact") && defaults.Compact {
		compact = true
	}
	if !cmd.Flags().Changed("format") && defaults.Format != "" {
		format = defaults.Format
	}

	multi, err := engine.ParseMultiLineMode(multiStr)
	if err != nil {
		return err
	}
	switch format {
	case "text", "json", "sarif":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	color.NoColor = !useColor

	st, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("input file <%s>: %w", inputPath, err)
	}
	if st.IsDir() {
		return fmt.Errorf("input file <%s>: is a directory", inputPath)
	}
	if workingDir != "" {
		workingDir = filepath.Clean(workingDir)
		dst, err := os.Stat(workingDir)
		if err != nil {
			return fmt.Errorf("working directory <%s>: %w", workingDir, err)
		}
		if !dst.IsDir() {
			return fmt.Errorf("working directory <%s>: %w", workingDir, fs.ErrNotExist)
		}
	}

	if !quiet && format == "text" {
		report.Rule(os.Stdout, '-')
		report.Headline(os.Stdout, " VSJumpToLine v"+version.Number+" ", '-')
		report.Rule(os.Stdout, '-')
		report.Infof(os.Stdout, "options:")
		report.Infof(os.Stdout, "--file: <%s>, size: <%s>, modified: <%s>",
			inputPath, report.HumanSize(st.Size()), st.ModTime().Format("2006-01-02T15:04:05"))
		report.Infof(os.Stdout, "--dir: <%s>", workingDir)
		report.Infof(os.Stdout, "--prefix: <%s>, --multi: <%s>, --suppress: <%t>, --compact: <%t>",
			prefix, multi, suppress, compact)
		report.Rule(os.Stdout, '-')
	}

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("input file <%s>: %w", inputPath, err)
	}
	defer file.Close()

	opts := engine.Options{
		WorkingDir:        workingDir,
		MultiLine:         multi,
		SuppressIdentical: suppress,
	}
	log := logger.New("jtol")

	start := time.Now()
	list, err := processInput(file, opts, log, quiet, inputPath)
	if err != nil {
		return fmt.Errorf("input file <%s>: %w", inputPath, err)
	}
	elapsed := time.Since(start)

	if exportPath != "" {
		if err := writeArchiveFile(exportPath, list); err != nil {
			return err
		}
	}

	switch format {
	case "text":
		report.Text(os.Stdout, list, report.TextOptions{
			Prefix:    prefix,
			Compact:   compact,
			MultiLine: multi,
		}, elapsed)
	case "json":
		if err := report.JSON(os.Stdout, list); err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
	case "sarif":
		if err := report.Sarif(os.Stdout, list); err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
	}
	return nil
}

func writeArchiveFile(path string, list *diag.List) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export file <%s>: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := report.WriteArchive(f, list); err != nil {
		return fmt.Errorf("export file <%s>: %w", path, err)
	}
	return nil
}

// processInput runs the engine pass, behind the wait spinner when
// stdout is a terminal and quiet is off.
func processInput(file *os.File, opts engine.Options, log hclog.Logger, quiet bool, inputPath string) (*diag.List, error) {
	if !quiet && isTerminal(os.Stdout) {
		return runProcessWithUI("processing "+inputPath, file, opts, log)
	}
	return engine.Process(file, opts, log)
}
