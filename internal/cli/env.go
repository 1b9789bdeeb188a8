package cli

import (
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Variables honored in an --env-file.
const (
	envSeed      = "JDM_SEED"
	envLogFormat = "JDM_LOG_FORMAT"
	envVerbose   = "JDM_VERBOSE"
)

// overlayEnvFile reads a dotenv file without touching the process
// environment and overrides the matching cfg keys.
func (cfg *Config) overlayEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return errors.Wrapf(err, "read env file %s", path)
	}
	if v, ok := env[envSeed]; ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Errorf("%s=%q: not an integer", envSeed, v)
		}
		cfg.Seed = &seed
	}
	if v, ok := env[envLogFormat]; ok {
		cfg.LogFormat = &v
	}
	if v, ok := env[envVerbose]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Errorf("%s=%q: not a boolean", envVerbose, v)
		}
		cfg.Verbose = &b
	}

	return nil
}
