// Package store keeps a PostgreSQL history of published reports.
package store

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cireport/internal/report"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	pool *pgxpool.Pool
}

func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() { s.pool.Close() }

// EnsureSchema creates the history tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// RecordPublication appends p to ci_report.publications. Earlier rows for the
// same build are kept.
func (s *Store) RecordPublication(ctx context.Context, p report.Publication) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO ci_report.publications (publication_id, worker_id, build_id, verdict, report_ts, report)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, uuid.NewString(), p.WorkerID, p.BuildID, p.Record.Verdict, p.Record.Timestamp, p.Record.Report)
	return err
}
