package database

import "context"

// TxRunner executes fn as one atomic unit. The context handed to fn carries
// the open transaction so repositories resolve it through their querier.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
