package core

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DefaultTickMillis = 8
const DefaultReleaseMillis = 120
const DefaultFirstRepeatMillis = 700 // 終端機第一次自動重複前的延遲

// RunConfig holds the few knobs of the local loop. The arena itself is fixed.
type RunConfig struct {
	TickMillis        int
	ReleaseMillis     int
	FirstRepeatMillis int
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		TickMillis:        DefaultTickMillis,
		ReleaseMillis:     DefaultReleaseMillis,
		FirstRepeatMillis: DefaultFirstRepeatMillis,
	}
}

// ReadProperties loads a .properties file. On any error the defaults are returned with it.
func ReadProperties(path string) (RunConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")
	v.SetDefault("TICK_MILLIS", DefaultTickMillis)
	v.SetDefault("RELEASE_MILLIS", DefaultReleaseMillis)
	v.SetDefault("FIRST_REPEAT_MILLIS", DefaultFirstRepeatMillis)

	if err := v.ReadInConfig(); err != nil {
		return DefaultRunConfig(), fmt.Errorf("read properties %s: %w", path, err)
	}

	conf := RunConfig{
		TickMillis:        cast.ToInt(v.Get("TICK_MILLIS")),
		ReleaseMillis:     cast.ToInt(v.Get("RELEASE_MILLIS")),
		FirstRepeatMillis: cast.ToInt(v.Get("FIRST_REPEAT_MILLIS")),
	}
	if conf.TickMillis <= 0 {
		conf.TickMillis = DefaultTickMillis
	}
	if conf.ReleaseMillis <= 0 {
		conf.ReleaseMillis = DefaultReleaseMillis
	}
	// the first repeat never comes sooner than later ones
	if conf.FirstRepeatMillis < conf.ReleaseMillis {
		conf.FirstRepeatMillis = DefaultFirstRepeatMillis
		if conf.FirstRepeatMillis < conf.ReleaseMillis {
			conf.FirstRepeatMillis = conf.ReleaseMillis
		}
	}
	return conf, nil
}
