package memory

import "context"

// TxManager satisfies ports.TxManager without transactional semantics; the
// in-memory repo applies each Save atomically under its own lock.
type TxManager struct{}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
