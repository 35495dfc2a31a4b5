//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB returns the database to its freshly seeded state: no bookings,
// no clients, every room available. Room inventory itself is left alone.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	statements := []string{
		`TRUNCATE bookings RESTART IDENTITY CASCADE`,
		`TRUNCATE clients RESTART IDENTITY CASCADE`,
		`UPDATE rooms SET availability = true`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("reset statement %q: %w", stmt, err)
		}
	}
	return nil
}
