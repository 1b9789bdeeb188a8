package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI.
func Execute(version string) {
	if err := createRootCommand(&Input{}, version, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(in *Input, version string, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jdm",
		Short:         "Realize, mutate and verify joint degree matrices",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, in, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	addGlobalFlags(rootCmd.PersistentFlags(), in)

	rootCmd.AddCommand(
		newRealizeCommand(in),
		newMutateCommand(in),
		newVerifyCommand(in),
		newRandomCommand(in),
	)

	return rootCmd
}

// setup layers --config, then --env-file, under the command-line flags and
// builds the logger.
func setup(cmd *cobra.Command, in *Input, stderr io.Writer) error {
	cfg := &Config{}
	if in.configPath != "" {
		var err error
		if cfg, err = LoadConfig(in.configPath); err != nil {
			return err
		}
	}
	if in.envFile != "" {
		if err := cfg.overlayEnvFile(in.envFile); err != nil {
			return err
		}
	}
	cfg.apply(cmd, in)

	l, err := newLogger(stderr, in.logFormat, in.verbose)
	if err != nil {
		return err
	}
	in.log = l

	if cmd.Flags().Lookup("seed") != nil && needsSeed(cmd) {
		in.resolveSeed(cmd, cfg)
	}

	return nil
}

func needsSeed(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationSeeded] == "true"
}

const annotationSeeded = "seeded"
