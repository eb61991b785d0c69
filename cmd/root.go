package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/gbprep/internal/config"
	"github.com/yumyai/gbprep/internal/util"
	"github.com/yumyai/gbprep/logger"
	"github.com/yumyai/gbprep/pkg/db"
	"github.com/yumyai/gbprep/pkg/tabfile"
)

var Version = "0.1.0"

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gbprep",
	Short: "Prepare and import data for the genome browser",
	Long: `gbprep holds the small jobs that turn gene/probe tables, tiling data,
FASTA sequences and peptide spectra reports into tab-delimited or GFF text,
or load them into a genome browser dataset file (.hbgb, SQLite).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return err
		}
		if err := logger.InitLogger(level); err != nil {
			return err
		}
		if !c.DotenvLoaded {
			logger.Debug("No .env found, using local environment")
		}
		cfg = c
		return nil
	},
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./gbprep.yaml if present)")
	rootCmd.PersistentFlags().String("db", "", "genome browser dataset file (also "+config.EnvPrefix+"_DATABASE)")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
}

func addHeaderFlag(cmd *cobra.Command, def tabfile.HeaderMode) {
	cmd.Flags().String("header", def.String(), "first line handling: data, skip or echo")
}

// openTable opens a tab-delimited input honouring the command's --header flag.
func openTable(cmd *cobra.Command, path string) (*tabfile.Reader, io.Closer, error) {
	modeName, err := cmd.Flags().GetString("header")
	if err != nil {
		return nil, nil, err
	}
	mode, err := tabfile.ParseHeaderMode(modeName)
	if err != nil {
		return nil, nil, err
	}
	in, err := util.OpenInput(path)
	if err != nil {
		return nil, nil, err
	}
	return tabfile.NewReader(in, mode), in, nil
}

// openBrowserDB resolves the dataset file from an optional positional
// argument, --db or config.
func openBrowserDB(ctx context.Context, explicit string) (*db.BrowserDB, error) {
	path, err := cfg.DatabasePath(explicit)
	if err != nil {
		return nil, err
	}
	if !util.FileExists(path) {
		return nil, fmt.Errorf("database %s does not exist", path)
	}
	logger.Info("Open database on", zap.String("DB_LOC", path))
	return db.Open(ctx, path)
}

func argOr(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}
