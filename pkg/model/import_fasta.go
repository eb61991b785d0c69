package model

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yumyai/gbprep/logger"
	"github.com/yumyai/gbprep/pkg/db"
)

// FastaImporter stores sequence text in the bases table, one row per input
// line, with coordinates running on across records.
type FastaImporter struct {
	DB            *db.BrowserDB
	SequenceID    int
	Replace       bool // delete existing rows for SequenceID first
	ProgressEvery int
}

func NewFastaImporter(b *db.BrowserDB, sequenceID int) *FastaImporter {
	return &FastaImporter{DB: b, SequenceID: sequenceID, ProgressEvery: 100000}
}

func (imp *FastaImporter) Import(ctx context.Context, r io.Reader) (*FastaSummary, error) {
	sum := &FastaSummary{SequenceID: imp.SequenceID}

	err := imp.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := db.EnsureBasesTable(ctx, tx); err != nil {
			return err
		}
		if imp.Replace {
			if _, err := tx.ExecContext(ctx, `delete from bases where sequence_id = ?`, imp.SequenceID); err != nil {
				return err
			}
		}

		stmt, err := tx.PreparexContext(ctx, `insert into bases (sequence_id, start, "end", sequence) values (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
		counter := 1
		lineNum := 0

		for sc.Scan() {
			lineNum++
			line := strings.TrimSpace(sc.Text())
			if strings.HasPrefix(line, ">") {
				sum.Headers++
				continue
			}
			if line == "" {
				continue
			}

			start := counter
			end := counter + len(line) - 1
			if _, err := stmt.ExecContext(ctx, imp.SequenceID, start, end, line); err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
			counter = end + 1
			sum.Rows++
			sum.Bases += len(line)

			if imp.ProgressEvery > 0 && sum.Rows%imp.ProgressEvery == 0 {
				logger.Debug("Importing bases", zap.Int("rows", sum.Rows), zap.Int("position", counter))
			}
		}
		return sc.Err()
	})
	if err != nil {
		return sum, fmt.Errorf("import fasta: %w", err)
	}
	return sum, nil
}
