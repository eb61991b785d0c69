package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yumyai/gbprep/pkg/gff"
	"github.com/yumyai/gbprep/pkg/tabfile"
)

var genGffCmd = &cobra.Command{
	Use:   "gen-gff",
	Short: "Write synthetic sine-scored tiling features for the Halobacterium replicons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := cmd.Flags().GetInt("window")
		if err != nil {
			return err
		}
		w := gff.NewWriter(cmd.OutOrStdout())
		if err := gff.Generate(gff.DefaultSequences, window, w.Write); err != nil {
			return err
		}
		return w.Flush()
	},
}

var makeGffCmd = &cobra.Command{
	Use:   "make-gff FILE",
	Short: "Convert start/end/value tiling rows to GFF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, in, err := openTable(cmd, args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		opts := gff.DefaultTranscodeOptions
		if opts.Seqname, err = cmd.Flags().GetString("seqname"); err != nil {
			return err
		}
		if opts.Scale, err = cmd.Flags().GetFloat64("scale"); err != nil {
			return err
		}
		return gff.Transcode(r, gff.NewWriter(cmd.OutOrStdout()), opts)
	},
}

func init() {
	genGffCmd.Flags().Int("window", gff.DefaultWindow, "window length")

	addHeaderFlag(makeGffCmd, tabfile.HeaderSkip)
	makeGffCmd.Flags().String("seqname", gff.DefaultTranscodeOptions.Seqname, "sequence name column value")
	makeGffCmd.Flags().Float64("scale", gff.DefaultTranscodeOptions.Scale, "multiplier applied to the value before flooring")

	rootCmd.AddCommand(genGffCmd, makeGffCmd)
}
