package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/qmakepatch/pkg/qmake"
)

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <qmake> [name ...]",
		Short: "Show the current version and path fields of a QMake executable",
		Long: `The inspect command locates every known version beacon and the named
variables (all known path variables by default) and prints their offset, the
size of the space reserved for them and their current value.

Example:
  qmakepatch inspect ./qmake
  qmakepatch inspect ./qmake qt_prfxpath qt_libspath --json`,
		Args: func(cmd *cobra.Command, args []string) error {
			return checkMinArgs(args, 1, cmd.UseLine())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
	return cmd
}

func runInspect(args []string) error {
	img, err := qmake.LoadImage(args[0])
	if err != nil {
		return err
	}

	fields, err := qmake.Inspect(img, args[1:])
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":   args[0],
			"size":   img.Size(),
			"fields": fields,
		})
	}

	printInfo("%s (%d bytes)\n\n", args[0], img.Size())
	for _, f := range fields {
		switch {
		case !f.Found:
			printVerbose("  %-8s %-14s not found\n", f.Kind, f.Name)
		case f.Error != "":
			printInfo("  %-8s %-14s 0x%08X  %s\n", f.Kind, f.Name, f.Offset, f.Error)
		default:
			printInfo("  %-8s %-14s 0x%08X  %4d  %s\n", f.Kind, f.Name, f.Offset, f.Reserved, quoteValue(f.Value))
		}
	}
	return nil
}

func quoteValue(v string) string {
	return fmt.Sprintf("%q", v)
}
