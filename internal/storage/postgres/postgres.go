package storage

import (
	"context"
	"database/sql"
	"fmt"

	base "github.com/rohanmgr130/Cafeteria-sub000/internal/storage"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/order"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/promo"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var _ base.Storage = (*PostgresStorage)(nil)

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &PostgresStorage{db: db}

	if err := s.db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStorage) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS transition_log (
            id SERIAL PRIMARY KEY,
            order_id TEXT NOT NULL,
            from_status TEXT NOT NULL,
            to_status TEXT NOT NULL,
            outcome TEXT NOT NULL,
            actor TEXT,
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS transition_log_order_idx ON transition_log(order_id)`,
		`CREATE TABLE IF NOT EXISTS promo_codes (
            id SERIAL PRIMARY KEY,
            code TEXT UNIQUE NOT NULL,
            discount_type TEXT NOT NULL,
            value DOUBLE PRECISION NOT NULL,
            expires_at TIMESTAMPTZ,
            created_by TEXT,
            created_at TIMESTAMPTZ NOT NULL
        )`,
	}
	for _, q := range stmts {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) RecordTransition(ctx context.Context, t *order.TransitionLog) error {
	q := `
        INSERT INTO transition_log (order_id,from_status,to_status,outcome,actor,created_at)
        VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	return s.db.QueryRowContext(ctx, q,
		t.OrderID, t.FromStatus, t.ToStatus, t.Outcome, t.Actor, t.CreatedAt,
	).Scan(&t.ID)
}

func (s *PostgresStorage) ListTransitions(ctx context.Context, orderID string) ([]order.TransitionLog, error) {
	const q = `
    SELECT id, order_id, from_status, to_status, outcome, actor, created_at
    FROM transition_log WHERE order_id = $1 ORDER BY created_at`
	rows, err := s.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []order.TransitionLog
	for rows.Next() {
		var t order.TransitionLog
		if err := rows.Scan(&t.ID, &t.OrderID, &t.FromStatus, &t.ToStatus, &t.Outcome, &t.Actor, &t.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, t)
	}
	return logs, rows.Err()
}

func (s *PostgresStorage) CreatePromo(ctx context.Context, p *promo.PromoCode) error {
	q := `
        INSERT INTO promo_codes (code,discount_type,value,expires_at,created_by,created_at)
        VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`
	return s.db.QueryRowContext(ctx, q,
		p.Code, p.DiscountType, p.Value, p.ExpiresAt, p.CreatedBy, p.CreatedAt,
	).Scan(&p.ID)
}

func (s *PostgresStorage) FindPromoByCode(ctx context.Context, code string) (*promo.PromoCode, error) {
	const q = `
    SELECT id, code, discount_type, value, expires_at, created_by, created_at
    FROM promo_codes WHERE code = $1`
	var p promo.PromoCode
	err := s.db.QueryRowContext(ctx, q, code).
		Scan(&p.ID, &p.Code, &p.DiscountType, &p.Value, &p.ExpiresAt, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
