// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/qmkit/array2d"
)

var (
	// flags shared by the subcommands
	flagRows int
	flagCols int
	flagFill int

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "array2d",
	})

	rootCmd = &cobra.Command{
		Use:   "array2d",
		Short: "Demonstrations of the array2d 2D container",
		Long: `array2d exercises the container library from the command line:
build a rows-by-cols integer container, fill it, transpose it, resize it,
and print the result. Useful as a smoke test and as living documentation.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 3, "row count")
	rootCmd.PersistentFlags().IntVar(&flagCols, "cols", 4, "column count")
	rootCmd.PersistentFlags().IntVar(&flagFill, "fill", 0, "fill value for new elements")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(checksumCmd)
}

// buildDemo constructs the rows×cols container with elements numbered 1..size
// in row-major order, the shape taken from the global flags.
func buildDemo() (*array2d.Array2D[int], error) {
	a, err := array2d.New[int](flagRows, flagCols)
	if err != nil {
		return nil, err
	}
	n := 0
	for it := a.Begin(); !it.Equal(a.End()); it = it.Next() {
		n++
		it.Set(n)
	}

	return a, nil
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a numbered rows×cols container",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildDemo()
		if err != nil {
			return err
		}
		if flagFill != 0 {
			a.FillParallel(flagFill)
		}
		logger.Info("built container", "rows", a.Rows(), "cols", a.Cols(), "size", a.Size())
		fmt.Print(a)

		return nil
	},
}

var transposeCmd = &cobra.Command{
	Use:   "transpose",
	Short: "Print a numbered container and its transpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildDemo()
		if err != nil {
			return err
		}
		t := a.Transposed()
		logger.Info("transposed", "from", shape(a.Rows(), a.Cols()), "to", shape(t.Rows(), t.Cols()))
		fmt.Print(t)

		return nil
	},
}

var resizeCmd = &cobra.Command{
	Use:   "resize <newRows> <newCols>",
	Short: "Resize a numbered container, filling new cells with --fill",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		newRows, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("newRows: %w", err)
		}
		newCols, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("newCols: %w", err)
		}

		a, err := buildDemo()
		if err != nil {
			return err
		}
		if err := a.ResizeFill(newRows, newCols, flagFill); err != nil {
			return err
		}
		logger.Info("resized", "to", shape(a.Rows(), a.Cols()), "fill", flagFill)
		fmt.Print(a)

		return nil
	},
}

var checksumCmd = &cobra.Command{
	Use:   "checksum",
	Short: "Print the xxHash fingerprint of a numbered container",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildDemo()
		if err != nil {
			return err
		}
		sum, err := array2d.Checksum(a)
		if err != nil {
			return err
		}
		fmt.Printf("%016x\n", sum)

		return nil
	},
}

func shape(r, c int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r))
	sb.WriteString("x")
	sb.WriteString(strconv.Itoa(c))

	return sb.String()
}
