package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/yumyai/gbprep/internal/util"
)

// FeatureColumns are the leading columns of every peptide feature table.
const FeatureColumns = `sequences_id, strand, start, "end", name, common_name, gene_type, score, redundancy`

func quote(name string) (string, error) {
	return util.QuoteIdent(name)
}

// ValueColumn names the i-th per-experiment score column of a staging table.
func ValueColumn(i int) string {
	return fmt.Sprintf("value%d", i)
}

func DropTable(ctx context.Context, ex sqlx.ExecerContext, table string) error {
	q, err := quote(table)
	if err != nil {
		return err
	}
	if _, err := ex.ExecContext(ctx, `drop table if exists `+q); err != nil {
		return fmt.Errorf("drop %s: %w", table, err)
	}
	return nil
}

// CreateFeatureTable (re)creates a feature table with valueColumns extra
// real columns named value0.. after the standard ones.
func CreateFeatureTable(ctx context.Context, ex sqlx.ExecerContext, table string, valueColumns int) error {
	q, err := quote(table)
	if err != nil {
		return err
	}
	if err := DropTable(ctx, ex, table); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "create table %s (\n", q)
	b.WriteString("  sequences_id integer,\n  strand text,\n  start integer,\n  \"end\" integer,\n")
	b.WriteString("  name text,\n  common_name text,\n  gene_type text,\n  score real,\n  redundancy int")
	for i := 0; i < valueColumns; i++ {
		fmt.Fprintf(&b, ",\n  %s real", ValueColumn(i))
	}
	b.WriteString("\n);")

	if _, err := ex.ExecContext(ctx, b.String()); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	return nil
}

// CopyFeatures fills dst from src in (sequences_id, strand, start, end)
// order. With scoreColumn set, that column becomes the score and only rows
// where it is positive are copied. Returns the number of rows copied.
func CopyFeatures(ctx context.Context, ex sqlx.ExecerContext, dst, src, scoreColumn string) (int64, error) {
	qdst, err := quote(dst)
	if err != nil {
		return 0, err
	}
	qsrc, err := quote(src)
	if err != nil {
		return 0, err
	}

	score, where := "score", ""
	if scoreColumn != "" {
		qs, err := quote(scoreColumn)
		if err != nil {
			return 0, err
		}
		score, where = qs+" as score", " where "+qs+" > 0"
	}

	query := fmt.Sprintf(`insert into %s (%s)
		select sequences_id, strand, start, "end", name, common_name, gene_type, %s, redundancy
		from %s%s
		order by sequences_id, strand, start, "end"`, qdst, FeatureColumns, score, qsrc, where)

	res, err := ex.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("copy %s into %s: %w", src, dst, err)
	}
	return res.RowsAffected()
}

func EnsureBasesTable(ctx context.Context, ex sqlx.ExecerContext) error {
	_, err := ex.ExecContext(ctx, basesTable)
	return err
}
