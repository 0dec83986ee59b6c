package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// A game write touches the companies, agents, game_states and
// manager_actions tables together, so the active transaction travels in the
// context: TxManager stashes it, every repo method picks it up and falls
// back to the base handle outside a transaction.

type gameTxKey struct{}

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, gameTxKey{}, tx)
}

func getDBFromCtx(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(gameTxKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base
}
