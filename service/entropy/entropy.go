package entropy

import (
	"context"
	"errors"
	"time"

	"lendbook/core"
	"lendbook/pkg/id"
)

// BlockAt number of whole blocks elapsed between genesis and t
func BlockAt(t time.Time, secondsPerBlock, genesis int64) (int64, error) {
	if secondsPerBlock <= 0 {
		return 0, errors.New("secondsPerBlock should not be less than or equal zero")
	}

	seconds := t.UTC().Unix() - genesis
	if seconds < 0 {
		return 0, errors.New("invalid blocks")
	}

	return seconds / secondsPerBlock, nil
}

type service struct {
	app core.App
	now func() time.Time
}

// New block clocked entropy source. Every block gets its own seed,
// orders inside one block are told apart by the nonce.
func New(app core.App) core.EntropySource {
	return &service{
		app: app,
		now: time.Now,
	}
}

// CurrentBlock current block
func (s *service) CurrentBlock(ctx context.Context) (int64, error) {
	return BlockAt(s.now(), s.app.SecondsPerBlock, s.app.Genesis)
}

func (s *service) Seed(ctx context.Context) (core.Hash, error) {
	block, err := s.CurrentBlock(ctx)
	if err != nil {
		return core.Hash{}, err
	}

	return id.BlockSeed(s.app.EntropySalt, block), nil
}

type static struct {
	seed core.Hash
}

// Static a fixed seed at block 0
func Static(seed core.Hash) core.EntropySource {
	return static{seed: seed}
}

func (s static) CurrentBlock(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s static) Seed(ctx context.Context) (core.Hash, error) {
	return s.seed, nil
}
