package internal

import (
	"testing"

	env "github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("UTC", config.Zone)
	req.Equal("{Y}-{M}-{D}T{h}:{m}:{s}.{ms}{Z}", config.Format)
	req.Equal("INFO", config.LogLevel)
	req.NoError(Validate(config))
}

func TestConfig_Overrides(t *testing.T) {
	req := require.New(t)

	t.Setenv("DATETIME_ZONE", "America/New_York")
	t.Setenv("DATETIME_FORMAT", "{weekday}, {D}/{M}")
	t.Setenv("LOG_LEVEL", "DEBUG")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("America/New_York", config.Zone)
	req.Equal("{weekday}, {D}/{M}", config.Format)
	req.Equal("DEBUG", config.LogLevel)
	req.NoError(Validate(config))
}

func TestConfig_RejectsUnknownLogLevel(t *testing.T) {
	req := require.New(t)

	t.Setenv("LOG_LEVEL", "VERBOSE")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.Error(Validate(config))
}
