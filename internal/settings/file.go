package settings

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//FileConfig is the optional TOML config file. Every key may be omitted.
//
//	[sync]
//	exclude = ["*.tmp", "node_modules"]
//
//	[log]
//	level = "debug"
//
//	[schedule]
//	stop_timeout = "10s"
type FileConfig struct {
	Sync     SyncSection     `toml:"sync"`
	Log      LogSection      `toml:"log"`
	Schedule ScheduleSection `toml:"schedule"`
}

type SyncSection struct {
	Exclude []string `toml:"exclude"` // appended before the --exclude patterns
}

type LogSection struct {
	Level string `toml:"level"`
}

type ScheduleSection struct {
	StopTimeout string `toml:"stop_timeout"` // Go duration
}

func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return FileConfig{}, fmt.Errorf("config %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
