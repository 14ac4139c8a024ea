package infra

import (
	"context"
	"fmt"

	"github.com/Gaetan-M/SocialWishlist/internal/sqlinline"
)

// Migrate applies the schema statements in order. Every statement is a
// CREATE IF NOT EXISTS, so running it on every boot is harmless.
func Migrate(ctx context.Context, sql SQLExecutor) error {
	for i, stmt := range sqlinline.SchemaStatements {
		if _, err := sql.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
