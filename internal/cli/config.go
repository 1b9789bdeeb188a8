package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file passed with --config. Unset keys leave
// flag defaults alone; flags given on the command line override the file.
type Config struct {
	Seed      *int64  `yaml:"seed"`
	Verbose   *bool   `yaml:"verbose"`
	LogFormat *string `yaml:"log-format"`

	Realize struct {
		Output     *string `yaml:"output"`
		Attempts   *int    `yaml:"attempts"`
		DrawBudget *int64  `yaml:"draw-budget"`
	} `yaml:"realize"`

	Mutate struct {
		SampleBudget *int64 `yaml:"sample-budget"`
	} `yaml:"mutate"`

	Verify struct {
		Strict *bool `yaml:"strict"`
	} `yaml:"verify"`
}

// LoadConfig decodes path, rejecting unknown keys.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg := &Config{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}

	return cfg, nil
}

// apply copies config values into in for every flag not set on the command line.
func (cfg *Config) apply(cmd *cobra.Command, in *Input) {
	defaulted := func(name string) bool {
		return cmd.Flags().Lookup(name) != nil && !cmd.Flags().Changed(name)
	}
	if cfg.Verbose != nil && defaulted("verbose") {
		in.verbose = *cfg.Verbose
	}
	if cfg.LogFormat != nil && defaulted("log-format") {
		in.logFormat = *cfg.LogFormat
	}
	if cfg.Realize.Output != nil && cmd.Name() == "realize" && defaulted("output") {
		in.realizeOutput = *cfg.Realize.Output
	}
	if cfg.Realize.Attempts != nil && defaulted("attempts") {
		in.attempts = *cfg.Realize.Attempts
	}
	if cfg.Realize.DrawBudget != nil && defaulted("draw-budget") {
		in.drawBudget = *cfg.Realize.DrawBudget
	}
	if cfg.Mutate.SampleBudget != nil && defaulted("sample-budget") {
		in.sampleBudget = *cfg.Mutate.SampleBudget
	}
	if cfg.Verify.Strict != nil && defaulted("strict") {
		in.strict = *cfg.Verify.Strict
	}
}
