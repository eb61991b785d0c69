package model

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yumyai/gbprep/internal/util"
	"github.com/yumyai/gbprep/logger"
	"github.com/yumyai/gbprep/pkg/db"
	"github.com/yumyai/gbprep/pkg/tabfile"
)

// PeptideImporter loads a peptide spectra report into a browser dataset as
// one all-fractions track plus one track per experiment.
type PeptideImporter struct {
	DB          *db.BrowserDB
	Experiments []string
	Layout      SpectraLayout
	SequenceID  int

	AllStyle        TrackStyle
	ExperimentStyle TrackStyle
}

func NewPeptideImporter(b *db.BrowserDB, experiments []string) *PeptideImporter {
	if len(experiments) == 0 {
		experiments = DefaultExperiments
	}
	return &PeptideImporter{
		DB:              b,
		Experiments:     experiments,
		Layout:          DefaultSpectraLayout,
		SequenceID:      1,
		AllStyle:        AllFractionsStyle,
		ExperimentStyle: ExperimentStyle,
	}
}

func (imp *PeptideImporter) validate() error {
	if len(imp.Experiments) == 0 {
		return errors.New("no experiments configured")
	}
	if imp.Layout.FirstFraction+len(imp.Experiments) > imp.Layout.FirstLocus {
		return fmt.Errorf("%d fraction columns from column %d overlap the loci at column %d",
			len(imp.Experiments), imp.Layout.FirstFraction, imp.Layout.FirstLocus)
	}
	for _, e := range imp.Experiments {
		if _, err := util.QuoteIdent(FeatureTableName(e)); err != nil {
			return fmt.Errorf("experiment %q: %w", e, err)
		}
	}
	return nil
}

// Import reads the report from r. Nothing is written when the database has
// no dataset to attach tracks to.
func (imp *PeptideImporter) Import(ctx context.Context, r io.Reader) (*PeptideSummary, error) {
	if err := imp.validate(); err != nil {
		return nil, err
	}

	ds, err := imp.DB.FirstDataset(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Importing peptides into dataset", zap.String("uuid", ds.UUID), zap.String("name", ds.Name))

	sum := &PeptideSummary{Dataset: ds, ExperimentRows: make(map[string]int64)}

	if err := imp.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		return imp.stage(ctx, tx, r, sum)
	}); err != nil {
		return sum, fmt.Errorf("stage peptides: %w", err)
	}

	if err := imp.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		uuids, err := db.FindTrackUUIDs(ctx, tx, strings.TrimSpace(PeptideTrackPrefix)+"%")
		if err != nil {
			return err
		}
		if len(uuids) > 0 {
			logger.Info("Removing old peptide tracks", zap.Int("count", len(uuids)))
		}
		if err := db.DeleteTracks(ctx, tx, uuids); err != nil {
			return err
		}
		track, err := db.RegisterTrack(ctx, tx, ds.UUID,
			db.Track{Name: AllFractionsTrack, Type: PeptideTrackType, Table: FractionsTable},
			imp.AllStyle.Attributes())
		if err != nil {
			return err
		}
		sum.Tracks = append(sum.Tracks, track)
		return nil
	}); err != nil {
		return sum, fmt.Errorf("register %s: %w", AllFractionsTrack, err)
	}

	for i, exp := range imp.Experiments {
		if err := imp.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
			return imp.buildExperiment(ctx, tx, ds, i, exp, sum)
		}); err != nil {
			return sum, fmt.Errorf("experiment %s: %w", exp, err)
		}
	}

	if err := db.DropTable(ctx, imp.DB.DB(), StagingTable); err != nil {
		return sum, err
	}
	return sum, nil
}

// stage loads every accepted locus into the staging table, then copies the
// sorted rows into the all-fractions table.
func (imp *PeptideImporter) stage(ctx context.Context, tx *sqlx.Tx, r io.Reader, sum *PeptideSummary) error {
	n := len(imp.Experiments)
	if err := db.CreateFeatureTable(ctx, tx, StagingTable, n); err != nil {
		return err
	}

	// sequences_id, strand, start, end, name, common_name, gene_type, score, redundancy, value0..
	stmt, err := tx.PreparexContext(ctx, fmt.Sprintf(
		`insert into "%s" values (?, ?, ?, ?, ?, NULL, ?, ?, ?%s)`,
		StagingTable, strings.Repeat(", ?", n)))
	if err != nil {
		return err
	}
	defer stmt.Close()

	tr := tabfile.NewReader(r, tabfile.HeaderSkip, tabfile.KeepEdges)
	err = tr.Each(func(rec tabfile.Record) error {
		if rec.Blank() {
			return nil
		}
		hit, err := imp.Layout.ParseSpectraRecord(rec, n)
		if err != nil {
			return err
		}
		sum.Lines++

		for _, iv := range hit.Oversized {
			sum.OversizedLoci++
			logger.Warn("Feature questionably large, skipped",
				zap.Int("line", hit.Line),
				zap.String("name", hit.Name),
				zap.String("strand", string(iv.Strand)),
				zap.Int("start", iv.Start),
				zap.Int("end", iv.End))
		}
		if len(hit.Loci) == 0 {
			sum.LinesWithoutLoci++
			logger.Warn("No locations for peptide", zap.String("name", hit.Name), zap.Int("line", hit.Line))
			return nil
		}

		args := make([]any, 0, 8+n)
		for _, iv := range hit.Loci {
			args = args[:0]
			args = append(args, imp.SequenceID, string(iv.Strand), iv.Start, iv.End, hit.Name,
				PeptideTrackType, hit.Score(), len(hit.Loci))
			for _, f := range hit.Fractions {
				args = append(args, f)
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("line %d: %w", hit.Line, err)
			}
			sum.StagedRows++
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("Staged peptide loci", zap.Int("lines", sum.Lines), zap.Int("rows", sum.StagedRows))

	if err := db.DropTable(ctx, tx, legacyMatrixTable); err != nil {
		return err
	}
	if err := db.CreateFeatureTable(ctx, tx, FractionsTable, 0); err != nil {
		return err
	}
	sum.FractionRows, err = db.CopyFeatures(ctx, tx, FractionsTable, StagingTable, "")
	return err
}

// Per-experiment tables rather than views over the staging table: a filtered
// view has gaps in rowid, and the browser's block index relies on contiguous
// rowids.
func (imp *PeptideImporter) buildExperiment(ctx context.Context, tx *sqlx.Tx, ds db.Dataset, i int, exp string, sum *PeptideSummary) error {
	table := FeatureTableName(exp)
	if err := db.CreateFeatureTable(ctx, tx, table, 0); err != nil {
		return err
	}
	rows, err := db.CopyFeatures(ctx, tx, table, StagingTable, db.ValueColumn(i))
	if err != nil {
		return err
	}
	sum.ExperimentRows[exp] = rows

	track, err := db.RegisterTrack(ctx, tx, ds.UUID,
		db.Track{Name: ExperimentTrackName(exp), Type: PeptideTrackType, Table: table},
		imp.ExperimentStyle.Attributes())
	if err != nil {
		return err
	}
	sum.Tracks = append(sum.Tracks, track)
	logger.Debug("Built experiment track", zap.String("track", track.Name), zap.Int64("rows", rows))
	return nil
}
