package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

func errLoadingConfigFile(path string, err error) error {
	return fmt.Errorf("failed to read configuration file %q: %w", path, err)
}

// LoadConfigFile reads a configuration file into a Config struct and performs basic validation.
//
// The Config parameter should be initialized with default values first. Relative TLSCert and TLSKey
// paths in the file are taken to be relative to the directory containing the file.
func LoadConfigFile(c *Config, path string, loggers ldlog.Loggers) error {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return errLoadingConfigFile(path, err)
	}
	certBefore, keyBefore := c.Server.TLSCert, c.Server.TLSKey
	if err := gcfg.ReadStringInto(c, string(data)); err != nil {
		return errLoadingConfigFile(path, FilterGcfgError(err))
	}
	dir := filepath.Dir(path)
	if c.Server.TLSCert != certBefore {
		c.Server.TLSCert = resolveFilePath(dir, c.Server.TLSCert)
	}
	if c.Server.TLSKey != keyBefore {
		c.Server.TLSKey = resolveFilePath(dir, c.Server.TLSKey)
	}
	loggers.Debugf("Loaded configuration file %q", path)

	return ValidateConfig(c, loggers)
}

func resolveFilePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// FilterGcfgError transforms errors returned by gcfg to our preferred format.
func FilterGcfgError(err error) error {
	gcfgExtraDataErrPhrase := "can't store data at"
	if err != nil && strings.Contains(err.Error(), gcfgExtraDataErrPhrase) {
		return errors.New(strings.Replace(err.Error(), gcfgExtraDataErrPhrase, "unsupported or misspelled", 1))
	}
	return err
}
