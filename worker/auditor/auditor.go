package auditor

import (
	"context"

	"lendbook/core"
	"lendbook/pkg/number"
	"lendbook/store/state"
	"lendbook/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DefaultSpec audit schedule when none is configured
const DefaultSpec = "@every 1m"

// Worker checks balance == free + reserved for every committed holding
type Worker struct {
	worker.BaseJob
	store core.KVStore
}

// New new auditor worker
func New(cfg core.Auditor, store core.KVStore) (*Worker, error) {
	job := Worker{
		store: store,
	}

	spec := cfg.Spec
	if spec == "" {
		spec = DefaultSpec
	}

	job.Cron = cron.New()
	if _, err := job.Cron.AddFunc(spec, job.Run); err != nil {
		return nil, err
	}

	job.OnWork = func() error {
		_, err := job.Audit(context.Background())
		return err
	}

	return &job, nil
}

// Audit returns every inconsistent holding
func (w *Worker) Audit(ctx context.Context) ([]*core.AccountBalance, error) {
	log := logger.FromContext(ctx).WithField("worker", "auditor")

	var (
		checked    int
		violations []*core.AccountBalance
	)

	err := state.ScanBalances(ctx, w.store, func(b *core.AccountBalance) error {
		checked++
		if !b.Consistent() {
			violations = append(violations, b)
			log.WithFields(map[string]interface{}{
				"asset":    b.Asset,
				"account":  b.Account,
				"balance":  number.String(b.Balance),
				"free":     number.String(b.Free),
				"reserved": number.String(b.Reserved),
			}).Errorln("inconsistent holding")
		}

		return nil
	})
	if err != nil {
		log.WithError(err).Errorln("scan balances")
		return nil, err
	}

	log.Debugf("audited %d holdings, %d violations", checked, len(violations))
	return violations, nil
}
