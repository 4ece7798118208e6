package settings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dirsync/internal/log"

	"github.com/urfave/cli/v3"
)

const DefaultStopTimeout = 5 * time.Second

//ErrUsage means the command line doesn't have the required positional arguments.
var ErrUsage = errors.New("usage: dirsync [flags] <source> <destination> <interval> <logfile>")

type Settings struct {
	SrcDir      string
	DstDir      string
	Interval    time.Duration
	LogFile     string
	LogLevel    log.Level
	Exclude     []string
	Once        bool
	StopTimeout time.Duration
}

//Command returns the root CLI command. Its action parses the command line (and the config file, if any)
//into Settings and passes them to action.
func Command(action func(ctx context.Context, stg *Settings) error) *cli.Command {
	return &cli.Command{
		Name:      "dirsync",
		Usage:     "periodically mirror a source directory tree into a destination directory",
		ArgsUsage: "<source> <destination> <interval> <logfile>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "once",
				Usage: "if true, then directories are synchronized only once (i.e. the program has finite execution), " +
					"otherwise - the process is started and lasts indefinitely (until interruption)",
			},
			&cli.StringFlag{
				Name:  "loglvl",
				Value: string(log.InfoLevel),
				Usage: fmt.Sprintf("level of logging, permitted values are: %v, %v, %v, %v",
					log.DebugLevel, log.InfoLevel, log.WarnLevel, log.ErrorLevel),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to an optional TOML config file",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "gitignore-style pattern of the source entries which are never synchronized (repeatable)",
			},
			&cli.DurationFlag{
				Name:  "stop-timeout",
				Value: DefaultStopTimeout,
				Usage: "how long the shutdown waits for the in-flight synchronization run",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			stg, err := fromCommand(cmd)
			if err != nil {
				return err
			}
			return action(ctx, stg)
		},
	}
}

func fromCommand(cmd *cli.Command) (*Settings, error) {
	args := cmd.Args().Slice()
	if len(args) < 4 {
		return nil, fmt.Errorf("%w: %d of 4 arguments given", ErrUsage, len(args))
	}
	if len(args) > 4 {
		return nil, fmt.Errorf("%w: unexpected arguments %q", ErrUsage, args[4:])
	}

	stg := &Settings{Once: cmd.Bool("once"), StopTimeout: cmd.Duration("stop-timeout")}

	var err error
	if stg.SrcDir, err = absPath(args[0]); err != nil {
		return nil, err
	}
	if stg.DstDir, err = absPath(args[1]); err != nil {
		return nil, err
	}
	if stg.SrcDir == stg.DstDir {
		return nil, errors.New("the directories for synchronization cannot be the same")
	}
	if stg.Interval, err = ParseInterval(args[2]); err != nil {
		return nil, err
	}
	if stg.LogFile, err = absPath(args[3]); err != nil {
		return nil, err
	}

	level := cmd.String("loglvl")
	if path := cmd.String("config"); path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if file.Log.Level != "" && !cmd.IsSet("loglvl") {
			level = file.Log.Level
		}
		if file.Schedule.StopTimeout != "" && !cmd.IsSet("stop-timeout") {
			if stg.StopTimeout, err = time.ParseDuration(file.Schedule.StopTimeout); err != nil {
				return nil, fmt.Errorf("config %s: stop_timeout: %w", path, err)
			}
		}
		stg.Exclude = append(stg.Exclude, file.Sync.Exclude...)
	}
	stg.Exclude = append(stg.Exclude, cmd.StringSlice("exclude")...)

	if stg.LogLevel, err = log.ParseLevel(level); err != nil {
		return nil, err
	}
	if stg.StopTimeout <= 0 {
		return nil, fmt.Errorf("stop timeout %v must be positive", stg.StopTimeout)
	}
	return stg, nil
}

//ParseInterval accepts a Go duration (30s, 1m30s) or a bare number of seconds. The result is always positive.
func ParseInterval(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	d, err := time.ParseDuration(s)
	if err != nil {
		secs, convErr := strconv.ParseInt(s, 10, 64)
		if convErr != nil {
			return 0, fmt.Errorf("interval %q is neither a duration (e.g. 30s, 5m) nor a number of seconds", s)
		}
		if secs > math.MaxInt64/int64(time.Second) {
			return 0, fmt.Errorf("interval %q is too long", s)
		}
		d = time.Duration(secs) * time.Second
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval %q must be positive", s)
	}
	return d, nil
}

func (stg *Settings) Validate() error {
	if err := validateDirectoryPath(stg.SrcDir); err != nil {
		return fmt.Errorf("the source directory is invalid: %v", err)
	}
	return nil
}

func validateDirectoryPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory path", path)
	}
	return nil
}

func absPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("path %q cannot be converted to absolute: %v", path, err)
	}
	return abs, nil
}
