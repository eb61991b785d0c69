package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/gbprep/internal/util"
	"github.com/yumyai/gbprep/logger"
	"github.com/yumyai/gbprep/pkg/tabfile"
	"github.com/yumyai/gbprep/pkg/ucsc"
)

var variableStepCmd = &cobra.Command{
	Use:   "variable-step FILE",
	Short: "Flatten a UCSC variableStep wiggle file into chrom/position/value rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := util.OpenInput(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		n, err := ucsc.ConvertVariableStep(in, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		logger.Debug("variable-step done", zap.Int("rows", n))
		return nil
	},
}

var genMatrixCmd = &cobra.Command{
	Use:   "gen-matrix GENES",
	Short: "Write a synthetic sine-valued matrix over the genes of a gene table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, in, err := openTable(cmd, args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = ucsc.WriteSineMatrix(r, cmd.OutOrStdout(), ucsc.DefaultGeneColumns)
		return err
	},
}

func init() {
	addHeaderFlag(genMatrixCmd, tabfile.HeaderSkip)
	rootCmd.AddCommand(variableStepCmd, genMatrixCmd)
}
