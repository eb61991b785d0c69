package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/gbprep/internal/util"
	"github.com/yumyai/gbprep/logger"
	"github.com/yumyai/gbprep/pkg/db"
	"github.com/yumyai/gbprep/pkg/model"
)

var importFastaCmd = &cobra.Command{
	Use:   "import-fasta FILE [DB]",
	Short: "Load FASTA sequence lines into the bases table",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		b, err := openBrowserDB(ctx, argOr(args, 1, ""))
		if err != nil {
			return err
		}
		defer b.Close()

		in, err := util.OpenInput(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		imp := model.NewFastaImporter(b, 1)
		if imp.SequenceID, err = cmd.Flags().GetInt("sequence-id"); err != nil {
			return err
		}
		if imp.Replace, err = cmd.Flags().GetBool("replace"); err != nil {
			return err
		}

		sum, err := imp.Import(ctx, in)
		if err != nil {
			return err
		}
		logger.Info("Imported bases",
			zap.Int("sequence_id", sum.SequenceID),
			zap.Int("rows", sum.Rows),
			zap.Int("bases", sum.Bases),
			zap.Int("headers", sum.Headers))
		return nil
	},
}

var importPepsCmd = &cobra.Command{
	Use:   "import-peps FILE [DB]",
	Short: "Load a peptide spectra report as peptide tracks",
	Long: `Load a peptide spectra report (with genome locations) into a browser
dataset. Builds one "peptides: all fractions" track and one track per
experiment holding the peptides seen in that experiment. Existing
"peptides:" tracks are replaced. The dataset file must already contain a
dataset.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		b, err := openBrowserDB(ctx, argOr(args, 1, ""))
		if err != nil {
			return err
		}
		defer b.Close()

		experiments, err := cmd.Flags().GetStringSlice("experiments")
		if err != nil {
			return err
		}
		if len(experiments) == 0 {
			experiments = cfg.Peptides.Experiments
		}

		imp := model.NewPeptideImporter(b, experiments)
		imp.SequenceID = cfg.Peptides.SequenceID
		imp.AllStyle.Color = cfg.Peptides.Color
		imp.AllStyle.Offset = cfg.Peptides.AllOffset
		imp.ExperimentStyle.Color = cfg.Peptides.Color
		imp.ExperimentStyle.Offset = cfg.Peptides.ExperimentOffset

		in, err := util.OpenInput(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		sum, err := imp.Import(ctx, in)
		if err != nil {
			return err
		}
		logger.Info("Imported peptides",
			zap.String("dataset", sum.Dataset.Name),
			zap.Int("lines", sum.Lines),
			zap.Int("rows", sum.StagedRows),
			zap.Int("lines_without_loci", sum.LinesWithoutLoci),
			zap.Int("oversized_loci", sum.OversizedLoci),
			zap.Int("tracks", len(sum.Tracks)))
		return nil
	},
}

var initDBCmd = &cobra.Command{
	Use:   "init-db [DB]",
	Short: "Create the browser tables in a dataset file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path, err := cfg.DatabasePath(argOr(args, 0, ""))
		if err != nil {
			return err
		}
		b, err := db.Open(ctx, path)
		if err != nil {
			return err
		}
		defer b.Close()

		if err := b.InitSchema(ctx); err != nil {
			return err
		}
		tracks, err := b.CountRows(ctx, "tracks")
		if err != nil {
			return err
		}
		logger.Info("Browser tables ready", zap.String("path", path), zap.Int("tracks", tracks))

		name, err := cmd.Flags().GetString("dataset")
		if err != nil || name == "" {
			return err
		}
		if ds, err := b.FirstDataset(ctx); err == nil {
			logger.Warn("Dataset already present, not adding another", zap.String("name", ds.Name))
			return nil
		}
		ds, err := b.CreateDataset(ctx, name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "dataset: %s, %s\n", ds.UUID, ds.Name)
		return err
	},
}

func init() {
	importFastaCmd.Flags().Int("sequence-id", 1, "sequences_id the bases belong to")
	importFastaCmd.Flags().Bool("replace", false, "delete existing bases of that sequence first")

	importPepsCmd.Flags().StringSlice("experiments", nil, "experiment names in report column order (default: the Sulfolobus P2 set)")

	initDBCmd.Flags().String("dataset", "", "also create a dataset with this name if none exists")

	rootCmd.AddCommand(importFastaCmd, importPepsCmd, initDBCmd)
}
