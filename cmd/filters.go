package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/gbprep/logger"
	"github.com/yumyai/gbprep/pkg/filter"
	"github.com/yumyai/gbprep/pkg/tabfile"
)

var findBadProbesCmd = &cobra.Command{
	Use:   "find-bad-probes FILE",
	Short: "Print genes whose probe is not inside the gene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, in, err := openTable(cmd, args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		n, err := filter.FindBadProbes(r, cmd.OutOrStdout(), filter.DefaultProbeColumns)
		if err != nil {
			return err
		}
		logger.Debug("find-bad-probes done", zap.Int("bad", n))
		return nil
	},
}

var findRangeCmd = &cobra.Command{
	Use:   "find-range FILE COLUMN",
	Short: "Print the min and max of a numeric column (0-based)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := strconv.Atoi(args[1])
		if err != nil || col < 0 {
			return fmt.Errorf("column must be a non-negative integer, got %q", args[1])
		}
		r, in, err := openTable(cmd, args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		rng, err := filter.FindRange(r, col)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), rng.String())
		return err
	},
}

var fixGeneNamesCmd = &cobra.Command{
	Use:   "fix-gene-names FILE",
	Short: "Blank the gene name of rows whose probe start equals probe end",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, in, err := openTable(cmd, args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		n, err := filter.FixGeneNames(r, cmd.OutOrStdout(), filter.DefaultProbeColumns)
		if err != nil {
			return err
		}
		logger.Debug("fix-gene-names done", zap.Int("blanked", n))
		return nil
	},
}

var selectByChrCmd = &cobra.Command{
	Use:   "select-by-chr FILE MOLECULE STRAND",
	Short: "Keep rows on one molecule and strand",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, in, err := openTable(cmd, args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		n, err := filter.SelectByChr(r, cmd.OutOrStdout(), filter.DefaultProbeColumns, args[1], args[2])
		if err != nil {
			return err
		}
		logger.Debug("select-by-chr done", zap.Int("rows", n))
		return nil
	},
}

func init() {
	addHeaderFlag(findBadProbesCmd, tabfile.HeaderData)
	addHeaderFlag(findRangeCmd, tabfile.HeaderData)
	addHeaderFlag(fixGeneNamesCmd, tabfile.HeaderData)
	addHeaderFlag(selectByChrCmd, tabfile.HeaderEcho)

	rootCmd.AddCommand(findBadProbesCmd, findRangeCmd, fixGeneNamesCmd, selectByChrCmd)
}
