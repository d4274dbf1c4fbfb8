// Package catalog is the package payload backing store: a sqlite database of
// installable environments and package groups.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Payload is the read surface screens consume. Screens never write to the
// catalog; selections land in the install profile instead.
type Payload interface {
	Environments(ctx context.Context) ([]Environment, error)
	Groups(ctx context.Context, environment string) ([]Group, error)
	SelectionSize(ctx context.Context, environment string, groups []string) (int64, error)
}

// Environment is a top-level installable system flavour.
type Environment struct {
	ID        string
	Name      string
	SizeBytes int64
}

// Group is an optional add-on package group within an environment.
type Group struct {
	ID        string
	Name      string
	SizeBytes int64
}

// Catalog implements Payload over sqlite.
type Catalog struct {
	db *sql.DB
}

// Open opens the catalog database with sensible sqlite defaults.
func Open(path string) (*Catalog, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error { return c.db.Close() }

// DB exposes the underlying handle for seeding and migrations.
func (c *Catalog) DB() *sql.DB { return c.db }

func (c *Catalog) Environments(ctx context.Context) ([]Environment, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, size_bytes FROM environments ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("catalog environments: %w", err)
	}
	defer rows.Close()
	var out []Environment
	for rows.Next() {
		var e Environment
		if err := rows.Scan(&e.ID, &e.Name, &e.SizeBytes); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (c *Catalog) Groups(ctx context.Context, environment string) ([]Group, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, size_bytes FROM groups WHERE environment_id = ? ORDER BY id`,
		environment)
	if err != nil {
		return nil, fmt.Errorf("catalog groups: %w", err)
	}
	defer rows.Close()
	var out []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Name, &g.SizeBytes); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// SelectionSize returns the install footprint of an environment plus the
// chosen add-on groups. Unknown group ids contribute nothing.
func (c *Catalog) SelectionSize(ctx context.Context, environment string, groups []string) (int64, error) {
	var total int64
	err := c.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(size_bytes), 0) FROM environments WHERE id = ?`,
		environment).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("catalog selection size: %w", err)
	}
	for _, g := range groups {
		var sz int64
		err := c.db.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(size_bytes), 0) FROM groups WHERE id = ? AND environment_id = ?`,
			g, environment).Scan(&sz)
		if err != nil {
			return 0, fmt.Errorf("catalog selection size: %w", err)
		}
		total += sz
	}
	return total, nil
}

// WithTx runs fn in a transaction.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
