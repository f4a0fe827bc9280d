// Package db carries the gorm handle and context-scoped transactions.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// TransactionManager wraps a gorm connection and runs callbacks inside a
// transaction that travels on the context, so repositories join the
// caller's transaction without receiving it as a parameter.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction opens a transaction, stores it on the context and
// invokes fn. A non-nil error from fn rolls the transaction back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// GetTxFromContext returns the in-flight transaction when one is carried
// on the context, and falls back to defaultDB bound to ctx otherwise.
// Repositories route every query through this so the same code works in
// and out of a transaction.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
