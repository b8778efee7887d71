package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShopStateRow represents one shop's persistent economy state.
type ShopStateRow struct {
	VNum        int32
	KeeperGold  int32
	BankAccount int32
}

// ShopRepository manages the shop_state table.
type ShopRepository struct {
	db *pgxpool.Pool
}

// NewShopRepository creates a new ShopRepository.
func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db}
}

// Load returns the persisted state for one shop.
// Returns nil, nil if the shop has never been saved.
func (r *ShopRepository) Load(ctx context.Context, vnum int32) (*ShopStateRow, error) {
	var row ShopStateRow
	err := r.db.QueryRow(ctx,
		`SELECT vnum, keeper_gold, bank_account FROM shop_state WHERE vnum = $1`, vnum,
	).Scan(&row.VNum, &row.KeeperGold, &row.BankAccount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying shop state #%d: %w", vnum, err)
	}
	return &row, nil
}

// LoadAll returns every persisted shop state keyed by vnum.
func (r *ShopRepository) LoadAll(ctx context.Context) (map[int32]ShopStateRow, error) {
	rows, err := r.db.Query(ctx, `SELECT vnum, keeper_gold, bank_account FROM shop_state`)
	if err != nil {
		return nil, fmt.Errorf("querying shop states: %w", err)
	}
	defer rows.Close()

	out := make(map[int32]ShopStateRow)
	for rows.Next() {
		var row ShopStateRow
		if err := rows.Scan(&row.VNum, &row.KeeperGold, &row.BankAccount); err != nil {
			return nil, fmt.Errorf("scanning shop state row: %w", err)
		}
		out[row.VNum] = row
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shop state rows: %w", err)
	}
	return out, nil
}

// SaveTx upserts one shop's state within an existing transaction.
func (r *ShopRepository) SaveTx(ctx context.Context, tx pgx.Tx, row ShopStateRow) error {
	if _, err := tx.Exec(ctx,
		`INSERT INTO shop_state (vnum, keeper_gold, bank_account)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (vnum)
		 DO UPDATE SET keeper_gold = $2, bank_account = $3`,
		row.VNum, row.KeeperGold, row.BankAccount,
	); err != nil {
		return fmt.Errorf("upserting shop state #%d: %w", row.VNum, err)
	}
	return nil
}

// SaveAll saves every shop's state in one transaction.
func (r *ShopRepository) SaveAll(ctx context.Context, rows []ShopStateRow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("shop state rollback failed", "error", err)
		}
	}()

	for _, row := range rows {
		if err := r.SaveTx(ctx, tx, row); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing shop states: %w", err)
	}
	return nil
}
