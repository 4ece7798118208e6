package app

import (
	"context"
	"fmt"
	"io"

	"dirsync/internal/dirsyncer"
	"dirsync/internal/log"
	"dirsync/internal/report"
	"dirsync/internal/settings"
	"dirsync/pkg/helpers/iout"
)

//Run wires the logger, the sync engine and the scheduler together and runs them.
//In the single-pass mode it prints the summary to out and fails if the run is incomplete,
//otherwise it blocks until ctx is done.
func Run(ctx context.Context, stg *settings.Settings, out io.Writer) error {
	if err := iout.EnsureFileExists(stg.LogFile); err != nil {
		return fmt.Errorf("log file %s is unusable: %w", stg.LogFile, err)
	}
	logger, err := log.New(stg.LogLevel, stg.LogFile)
	if err != nil {
		return fmt.Errorf("cannot build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }() // syncing stdout fails on some platforms

	logger.Info("dirsync is configured",
		log.String("source", stg.SrcDir),
		log.String("destination", stg.DstDir),
		log.Duration("interval", stg.Interval),
		log.String("logFile", stg.LogFile),
		log.Any("exclude", stg.Exclude),
	)
	if err := stg.Validate(); err != nil {
		logger.Warn("runs will fail until the source directory is available", log.Cause(err))
	}

	engine := dirsyncer.NewSyncer(stg.SrcDir, stg.DstDir, dirsyncer.WithExcludePatterns(stg.Exclude...))
	engine.SetLog(log.NewSink(logger))
	syncer := dirsyncer.New(logger, engine, stg.Interval, stg.StopTimeout)

	if stg.Once {
		results, err := syncer.RunOnce()
		fmt.Fprintln(out, report.Render(results, err))
		if err != nil {
			return fmt.Errorf("synchronization incomplete: %w", err)
		}
		return nil
	}

	syncer.Start(ctx)
	return nil
}
