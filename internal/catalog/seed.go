package catalog

import (
	"context"
	"database/sql"
)

type seedEnvironment struct {
	id    string
	name  string
	size  int64
	order int
}

type seedGroup struct {
	id   string
	env  string
	name string
	size int64
}

var defaultEnvironments = []seedEnvironment{
	{"minimal", "Minimal Install", 1_200_000_000, 10},
	{"server", "Server", 2_800_000_000, 20},
	{"workstation", "Workstation", 5_600_000_000, 30},
}

var defaultGroups = []seedGroup{
	{"headless-mgmt", "minimal", "Headless Management", 150_000_000},
	{"container-tools", "server", "Container Tools", 420_000_000},
	{"web-server", "server", "Web Server", 310_000_000},
	{"dev-tools", "workstation", "Development Tools", 900_000_000},
	{"office", "workstation", "Office Suite", 1_100_000_000},
}

// SeedDefaults inserts the stock environments and groups if the catalog is
// empty. Existing rows are left alone so a vendor-provided catalog wins.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM environments`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for _, e := range defaultEnvironments {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO environments (id, name, size_bytes, sort_order) VALUES (?, ?, ?, ?)`,
				e.id, e.name, e.size, e.order); err != nil {
				return err
			}
		}
		for _, g := range defaultGroups {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO groups (id, environment_id, name, size_bytes) VALUES (?, ?, ?, ?)`,
				g.id, g.env, g.name, g.size); err != nil {
				return err
			}
		}
		return nil
	})
}
