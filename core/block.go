package core

import (
	"context"
)

// EntropySource per block unpredictable seed used to derive order ids
type EntropySource interface {
	CurrentBlock(ctx context.Context) (int64, error)
	Seed(ctx context.Context) (Hash, error)
}
