package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joshuapare/qmakepatch/internal/logger"
	"github.com/joshuapare/qmakepatch/pkg/qmake"
	"github.com/joshuapare/qmakepatch/pkg/types"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	logFile  string
	logLevel string

	// Patch flags
	backup       bool
	backupSuffix string
	dryRun       bool
	profilePath  string
)

var rootCmd = &cobra.Command{
	Use:   "qmakepatch <qmake> <version> [name=value ...]",
	Short: "Patching utility for QMake executables",
	Long: `qmakepatch changes values hardcoded into a QMake executable, such as
install paths and the Qt version string, regardless of its executable format
(ELF, PE or anything else) and without relying on external qt.conf files.

Arguments:
  qmake       Path to the QMake executable: 'qmake', '/bin/qmake-qt5'
  version     Version string to be written. Pass an empty argument to skip it.
  name=value  Variable name and its new value, e.g. qt_prfxpath=/opt/qt4.
              Qt 5 only allows a few of them to be patched.

The file keeps its exact size. It is written back only when every requested
change fits into the space reserved for it.`,
	Example: `  qmakepatch ./qmake 4.8.4 qt_prfxpath=/opt/qt4 qt_libspath=/opt/qt4/lib
  qmakepatch ./qmake "" qt_prfxpath=/opt/qt5 --backup
  qmakepatch --profile qt4.yaml
  qmakepatch inspect ./qmake`,
	Args:              patchArgs,
	PersistentPreRunE: initLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPatch(args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write diagnostics to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostics level (debug, info, warn, error)")

	rootCmd.Flags().BoolVar(&backup, "backup", false, "Back up the executable before writing it")
	rootCmd.Flags().StringVar(&backupSuffix, "backup-suffix", qmake.DefaultBackupSuffix, "Suffix of the backup file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Apply every change in memory only")
	rootCmd.Flags().StringVar(&profilePath, "profile", "", "Read the image, version and variables from a profile file")

	rootCmd.SetFlagErrorFunc(flagError)
	rootCmd.SetGlobalNormalizationFunc(wordSepNormalizeFunc)
}

// wordSepNormalizeFunc accepts "_" in place of "-" in flag names.
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}
	return pflag.NormalizedName(name)
}

// execute runs the command line and returns the process exit status.
func execute(args []string) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	// "-?" is not a valid pflag shorthand.
	if len(args) > 0 && args[0] == "-?" {
		args = append([]string{"--help"}, args[1:]...)
	}
	rootCmd.SetArgs(literalHelpArgs(args))
	defer logger.Close()

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return int(types.Success)
	}

	code := types.CodeOf(err)
	if code == types.BadSyntax {
		_ = cmd.Help()
	}
	printError("%v\n", err)
	return int(code)
}

// flagError marks flag parsing failures as syntax errors.
func flagError(cmd *cobra.Command, err error) error {
	return &types.Error{Code: types.BadSyntax, Err: err}
}

// literalHelpArgs stops flag parsing at the first help token that follows a
// positional of the patch command, so "qmake 4.8 -h" is read as a variable
// spec instead of a help request. Help is only honored before positionals.
func literalHelpArgs(args []string) []string {
	positional := false
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return args
		case isHelpToken(a):
			if positional {
				out := append([]string{}, args[:i]...)
				out = append(out, "--")
				return append(out, args[i:]...)
			}
		case strings.HasPrefix(a, "-") && len(a) > 1:
			if takesValue(a) {
				i++
			}
		default:
			if !positional && isSubcommand(a) {
				return args
			}
			positional = true
		}
	}
	return args
}

func isHelpToken(a string) bool {
	return a == "-h" || a == "--help" || a == "-?"
}

// takesValue reports whether flag token a consumes the next argument.
func takesValue(a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	for _, fs := range []*pflag.FlagSet{rootCmd.Flags(), rootCmd.PersistentFlags()} {
		if strings.HasPrefix(a, "--") {
			f = fs.Lookup(string(wordSepNormalizeFunc(fs, a[2:])))
		} else if len(a) == 2 {
			f = fs.ShorthandLookup(a[1:])
		}
		if f != nil {
			break
		}
	}
	return f != nil && f.NoOptDefVal == ""
}

func isSubcommand(name string) bool {
	if name == "help" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func initLogging(cmd *cobra.Command, args []string) error {
	err := logger.Init(logger.Options{
		Verbose: verbose,
		Quiet:   quiet,
		Level:   logLevel,
		File:    logFile,
	})
	if err != nil {
		return types.Errorf(types.BadConfig, "could not initialize logging: %w", err)
	}
	return nil
}

// patchArgs validates the positionals of the patch command. With a profile
// every positional is optional.
func patchArgs(cmd *cobra.Command, args []string) error {
	if profilePath != "" {
		return nil
	}
	return checkMinArgs(args, 2, cmd.UseLine())
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// checkMinArgs validates that at least the minimum number of arguments were provided
func checkMinArgs(args []string, min int, usage string) error {
	if len(args) < min {
		return types.Errorf(types.BadSyntax,
			"expected at least %d argument(s), got %d\nUsage: %s",
			min,
			len(args),
			usage,
		)
	}
	return nil
}
