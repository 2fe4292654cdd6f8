package vouches

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/grandx/vouchbot/internal/bot/models"
	"github.com/grandx/vouchbot/internal/common"
	"github.com/grandx/vouchbot/internal/dbx"
)

// SQLiteRepository implements Repository over a single-file SQLite database.
// It relies on SQLite's own locking for write serialization; there is no
// application-level coordination.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a repository bound to the given database handle.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// storeErr tags err with common.ErrStore so handlers can classify failures
// with errors.Is while keeping the driver detail in the chain.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrStore, err)
}

// Init creates the vouches table and its target index. Both statements are
// idempotent and run in one transaction.
func (r *SQLiteRepository) Init(ctx context.Context) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS vouches (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				target_user_id TEXT NOT NULL,
				author_user_id TEXT NOT NULL,
				product TEXT NOT NULL,
				feedback TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`CREATE INDEX IF NOT EXISTS idx_vouches_target ON vouches(target_user_id)`)
		return err
	})
	if err != nil {
		return storeErr("init schema", err)
	}
	return nil
}

func (r *SQLiteRepository) Create(ctx context.Context, targetUserID, authorUserID, product, feedback string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO vouches (target_user_id, author_user_id, product, feedback, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		targetUserID, authorUserID, product, feedback, time.Now().UTC())
	if err != nil {
		return 0, storeErr("insert vouch", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("read inserted id", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListByTarget(ctx context.Context, targetUserID string) ([]models.Vouch, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, target_user_id, author_user_id, product, feedback, created_at
		FROM vouches
		WHERE target_user_id = ?
		ORDER BY id`,
		targetUserID)
	if err != nil {
		return nil, storeErr("select vouches", err)
	}
	defer rows.Close()

	var result []models.Vouch
	for rows.Next() {
		var v models.Vouch
		if err := rows.Scan(&v.ID, &v.TargetUserID, &v.AuthorUserID, &v.Product, &v.Feedback, &v.CreatedAt); err != nil {
			return nil, storeErr("scan vouch", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate vouches", err)
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteAllByTarget(ctx context.Context, targetUserID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vouches WHERE target_user_id = ?`, targetUserID)
	if err != nil {
		return 0, storeErr("delete vouches", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("read rows affected", err)
	}
	return n, nil
}

// TopN orders by count descending, then by target ID ascending. SQLite would
// otherwise leave the tie order unspecified.
func (r *SQLiteRepository) TopN(ctx context.Context, n int) ([]models.TopEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT target_user_id, COUNT(*) AS cnt
		FROM vouches
		GROUP BY target_user_id
		ORDER BY cnt DESC, target_user_id ASC
		LIMIT ?`,
		n)
	if err != nil {
		return nil, storeErr("select top vouched", err)
	}
	defer rows.Close()

	var result []models.TopEntry
	for rows.Next() {
		var e models.TopEntry
		if err := rows.Scan(&e.TargetUserID, &e.Count); err != nil {
			return nil, storeErr("scan top entry", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate top entries", err)
	}
	return result, nil
}
