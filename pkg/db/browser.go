package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yumyai/gbprep/logger"

	_ "modernc.org/sqlite"
)

var ErrNoDataset = errors.New("no datasets found")

type Dataset struct {
	UUID string `db:"uuid"`
	Name string `db:"name"`
}

// BrowserDB is a genome browser dataset file (.hbgb).
type BrowserDB struct {
	db   *sqlx.DB
	Path string
}

func Open(ctx context.Context, path string) (*BrowserDB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	logger.Debug("Opened database", zap.String("path", path))
	return &BrowserDB{db: db, Path: path}, nil
}

func (b *BrowserDB) Close() error {
	return b.db.Close()
}

func (b *BrowserDB) DB() *sqlx.DB {
	return b.db
}

// InitSchema creates any missing browser tables.
func (b *BrowserDB) InitSchema(ctx context.Context) error {
	return b.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("init schema: %w", err)
			}
		}
		return nil
	})
}

// WithTx runs fn in a transaction, committing only if fn returns nil.
func (b *BrowserDB) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := b.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}

// NewUUID returns a time-based UUID, the kind the browser has always used
// for datasets and tracks.
func NewUUID() (string, error) {
	u, err := uuid.NewUUID()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (b *BrowserDB) CreateDataset(ctx context.Context, name string) (Dataset, error) {
	id, err := NewUUID()
	if err != nil {
		return Dataset{}, err
	}
	ds := Dataset{UUID: id, Name: name}
	if _, err := b.db.NamedExecContext(ctx, `insert into datasets (uuid, name) values (:uuid, :name)`, ds); err != nil {
		return Dataset{}, fmt.Errorf("create dataset: %w", err)
	}
	return ds, nil
}

// FirstDataset returns the dataset that imported tracks get attached to.
// A browser file normally holds exactly one.
func (b *BrowserDB) FirstDataset(ctx context.Context) (Dataset, error) {
	var ds Dataset
	err := b.db.GetContext(ctx, &ds, `select uuid, name from datasets order by rowid limit 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return ds, ErrNoDataset
	}
	if err != nil {
		return ds, fmt.Errorf("%w: %v", ErrNoDataset, err)
	}
	return ds, nil
}

// CountRows returns the number of rows in table.
func (b *BrowserDB) CountRows(ctx context.Context, table string) (int, error) {
	q, err := quote(table)
	if err != nil {
		return 0, err
	}
	var n int
	err = b.db.GetContext(ctx, &n, `select count(*) from `+q)
	return n, err
}
