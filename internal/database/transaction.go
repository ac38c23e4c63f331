package database

import (
	"context"

	"gorm.io/gorm"
)

type contextKey string

const txContextKey contextKey = "transaction"

// WithTx stores an open transaction on the context so repositories called
// with it join the transaction instead of opening their own session.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey, tx)
}

func TxFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txContextKey).(*gorm.DB)
	return tx, ok && tx != nil
}

// Session returns the transaction carried by ctx, or a fresh context bound session.
func (s *DB) Session(ctx context.Context) *gorm.DB {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.SQLWithContext(ctx)
}
