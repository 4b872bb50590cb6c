package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xyproto/filelister"
	"github.com/xyproto/filelister/internal/config"
	"github.com/xyproto/filelister/internal/logger"
	"gopkg.in/yaml.v3"
)

// app holds what the subcommands share once the configuration is resolved.
type app struct {
	dir        string
	configPath string
	logLevel   string
	backend    string
	casePolicy string

	cfg *config.Config
	log *logger.ConsoleLogger
}

// setup changes directory, loads the configuration and applies the
// environment and the persistent flags, in that order.
func (a *app) setup(cmd *cobra.Command) error {
	if a.dir != "" {
		if err := os.Chdir(a.dir); err != nil {
			return err
		}
	}
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("backend") {
		cfg.Backend = a.backend
	}
	if flags.Changed("case") {
		policy, err := filelister.ParseCasePolicy(a.casePolicy)
		if err != nil {
			return err
		}
		cfg.SetCasePolicy(policy)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	a.log.LogTrace(fmt.Sprintf("backend %s, case %s", cfg.Backend, cfg.CasePolicy()))
	return nil
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "filelister",
		Short: "List C and C++ source files",
		Long: `filelister finds C and C++ source files (.c, .cc, .cpp, .cxx and .c++).

Files that are named explicitly are always listed. Files that are found
while descending into directories are only listed if they have one of the
source file extensions.

Settings are read from .filelister.yaml, FILELISTER_* environment
variables (also from .env) and the command line, where the command line
has the last word.`,
		Version:      strings.TrimPrefix(versionString, "filelister "),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.dir, "chdir", "C", "", "run in the given directory")
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: "+strings.Join(logger.Levels, ", "))
	pf.StringVar(&a.backend, "backend", "default", "directory backend: "+strings.Join(filelister.BackendNames, ", "))
	pf.StringVar(&a.casePolicy, "case", "", "file name comparison: sensitive or insensitive (default for this platform: "+filelister.DefaultCasePolicy.String()+")")

	cmd.AddCommand(newListCommand(a))
	cmd.AddCommand(newSimplifyCommand())
	cmd.AddCommand(newAcceptCommand())
	cmd.AddCommand(newSameCommand(a))
	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var (
		recursive bool
		unique    bool
		simplify  bool
		format    string
	)
	cmd := &cobra.Command{
		Use:   "list [path]...",
		Short: "List source files at the given paths (default: .)",
		Long: `List source files at the given paths.

A path that ends with a separator lists everything directly inside that
directory. Any other path is expanded as a pattern, so "src/*.cpp" works.
Paths that can not be read are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("recursive") {
				cfg.Recursive = recursive
			}
			if flags.Changed("unique") {
				cfg.Unique = unique
			}
			if flags.Changed("simplify") {
				cfg.Simplify = simplify
			}
			if flags.Changed("format") {
				cfg.Format = format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"."}
			}

			backend, err := filelister.BackendByName(cfg.Backend)
			if err != nil {
				return err
			}
			lister := filelister.NewListerWithBackend(backend)
			lister.Logger = a.log

			var filenames []string
			for _, path := range args {
				lister.RecursiveAddFiles(&filenames, path, cfg.Recursive)
			}
			a.log.LogDebug(fmt.Sprintf("found %d file(s)", len(filenames)))

			switch {
			case cfg.Unique:
				filenames = filelister.UniqueFiles(filenames, filelister.NewComparator(cfg.CasePolicy()))
			case cfg.Simplify:
				for i, f := range filenames {
					filenames[i] = filelister.SimplifyPath(f)
				}
			}
			return writeFiles(cmd.OutOrStdout(), cfg.Format, filenames)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&recursive, "recursive", "r", true, "descend into directories and only list source files")
	f.BoolVarP(&unique, "unique", "u", false, "simplify paths and remove duplicates")
	f.BoolVarP(&simplify, "simplify", "s", false, "simplify paths")
	f.StringVarP(&format, "format", "f", "text", "output format: "+strings.Join(config.Formats, ", "))
	return cmd
}

// writeFiles writes filenames to w in the given format.
func writeFiles(w io.Writer, format string, filenames []string) error {
	if filenames == nil {
		filenames = []string{}
	}
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(filenames, "", "  ")
		if err != nil {
			return fmt.Errorf("could not encode file list: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(filenames)
		if err != nil {
			return fmt.Errorf("could not encode file list: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	for _, f := range filenames {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

func newSimplifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <path>...",
		Short: "Print simplified paths",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range args {
				fmt.Fprintln(cmd.OutOrStdout(), filelister.SimplifyPath(p))
			}
		},
	}
}

func newAcceptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <filename>...",
		Short: "Tell if file names have a C or C++ source extension",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range args {
				answer := "no"
				if filelister.AcceptFile(name) {
					answer = "yes"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, answer)
			}
		},
	}
}

func newSameCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "same <filename> <filename>",
		Short: "Exit with 0 if two file names refer to the same file name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp := filelister.NewComparator(a.cfg.CasePolicy())
			if !cmp.SameFileName(args[0], args[1]) {
				return fmt.Errorf("%s and %s differ (case %s)", args[0], args[1], cmp.Policy)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "same")
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString)
		},
	}
}
