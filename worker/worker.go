package worker

import (
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// IJob cron driven job
type IJob interface {
	Start() error
	Run()
	Stop() error
}

type OnWork func() error

// BaseJob runs OnWork on every cron tick, skipping ticks while a run is in flight
type BaseJob struct {
	Cron      *cron.Cron
	OnWork    OnWork
	isRunning int32
}

func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

func (job *BaseJob) Stop() error {
	<-job.Cron.Stop().Done()
	return nil
}

func (job *BaseJob) Run() {
	if !atomic.CompareAndSwapInt32(&job.isRunning, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&job.isRunning, 0)

	if err := job.OnWork(); err != nil {
		logrus.WithError(err).Errorln("job failed")
	}
}
