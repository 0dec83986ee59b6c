package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a day resolution or a hire as one postgres transaction, so
// the company update, the roster sync, the new state row and the action
// journal commit or roll back together.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
