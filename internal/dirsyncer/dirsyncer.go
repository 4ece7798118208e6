package dirsyncer

import (
	"context"
	"sync/atomic"
	"time"

	"dirsync/internal/log"
	"dirsync/internal/model"
	"dirsync/pkg/helpers/run"
	"dirsync/pkg/helpers/ut"

	"golang.org/x/sync/semaphore"
)

//Engine performs a single synchronization run. *Syncer is the production implementation.
type Engine interface {
	Start() (model.SyncResults, error)
}

//DirSyncer runs an Engine periodically. At most one run is in flight at a time:
//a tick which comes while the previous run is still going is skipped.
type DirSyncer struct {
	log         log.Logger
	engine      Engine
	interval    time.Duration
	stopTimeout time.Duration
	inFlight    *semaphore.Weighted
	nextRunID   func() uint64
	skipped     atomic.Uint64
}

func New(logger log.Logger, engine Engine, interval, stopTimeout time.Duration) *DirSyncer {
	return &DirSyncer{
		log:         logger,
		engine:      engine,
		interval:    interval,
		stopTimeout: stopTimeout,
		inFlight:    semaphore.NewWeighted(1),
		nextRunID:   ut.CreateUint64IDGenerator(),
	}
}

//Start runs the engine right away and then on every tick of the interval, until ctx is done.
//On return it has waited (no longer than the stop timeout) for the in-flight run to finish.
func (d *DirSyncer) Start(ctx context.Context) {
	d.log.Info("synchronization started", log.Duration("interval", d.interval))
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.tick()
	for {
		select {
		case <-ctx.Done():
			d.stop()
			return
		case <-ticker.C:
			d.tick()
		}
	}
}

//RunOnce performs one run synchronously and logs its outcome.
func (d *DirSyncer) RunOnce() (model.SyncResults, error) {
	runID := d.nextRunID()
	d.log.Debug("synchronization run started", log.Uint64("run", runID))
	start := time.Now()

	var results model.SyncResults
	err := run.WithError(func() (err error) {
		results, err = d.engine.Start()
		return err
	})

	fields := []log.Field{log.Uint64("run", runID), log.Duration("took", time.Since(start)), log.Any("results", results)}
	switch {
	case err != nil:
		d.log.Warn("synchronization run did not complete", append(fields, log.Cause(err))...)
	case results.Changed():
		d.log.Info("synchronization run completed", fields...)
	default:
		d.log.Debug("synchronization run completed, nothing changed", fields...)
	}
	return results, err
}

//Skipped returns the number of ticks skipped because of a run in flight.
func (d *DirSyncer) Skipped() uint64 {
	return d.skipped.Load()
}

//tick starts a run in the background unless one is in flight. It reports whether the run was started.
func (d *DirSyncer) tick() bool {
	if !d.inFlight.TryAcquire(1) {
		d.skipped.Add(1)
		d.log.Warn("previous synchronization run is still in progress, the tick is skipped")
		return false
	}
	run.Go(
		func() error {
			_, err := d.RunOnce()
			return err
		},
		func(error) { d.inFlight.Release(1) },
	)
	return true
}

//stop awaits the in-flight run. But it doesn't wait forever - there is a timeout.
func (d *DirSyncer) stop() {
	d.log.Debug("dirSyncer is awaiting the in-flight run to finish")
	ctx, cancel := context.WithTimeout(context.Background(), d.stopTimeout)
	defer cancel()
	if err := d.inFlight.Acquire(ctx, 1); err != nil {
		d.log.Error("dirSyncer has been abnormally stopped on timeout (the in-flight run is still going)")
		return
	}
	d.inFlight.Release(1)
	d.log.Info("synchronization stopped")
}
