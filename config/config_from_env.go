package config

import (
	"errors"
	"os"

	ct "github.com/launchdarkly/go-configtypes"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// LoadConfigFromEnvironment sets parameters in a Config struct from environment variables.
//
// The Config parameter should be initialized with default values first. Variables that are not set
// leave the corresponding fields unchanged.
func LoadConfigFromEnvironment(c *Config, loggers ldlog.Loggers) error {
	reader := ct.NewVarReaderFromEnvironment()

	reader.ReadStruct(&c.Main, false)
	reader.ReadStruct(&c.Compare, false)
	reader.ReadStruct(&c.Server, false)
	reader.ReadStruct(&c.Prometheus, false)

	rejectFileOnlyVariable("CONFIG", reader)

	if !reader.Result().OK() {
		return reader.Result().GetError()
	}

	return ValidateConfig(c, loggers)
}

func rejectFileOnlyVariable(name string, reader *ct.VarReader) {
	// The config file path is a command-line flag. Setting it as a variable would otherwise be silently
	// ignored.
	if os.Getenv(name) != "" {
		reader.AddError(ct.ValidationPath{name}, errors.New("use the -config command-line option instead"))
	}
}
