package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/radutopala/qnickname/internal/config"
)

// --- Shared testable vars ---

var (
	configDir   = config.Dir
	osStat      = os.Stat
	osMkdirAll  = os.MkdirAll
	osWriteFile = os.WriteFile
)

func newOnboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "onboard",
		Aliases: []string{"setup"},
		Short:   "Write an example config to ~/.qnickname/config.json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			force, _ := cmd.Flags().GetBool("force")
			path, err := onboard(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Config written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite existing config")
	return cmd
}

func onboard(force bool) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	configPath := filepath.Join(dir, "config.json")

	if _, err := osStat(configPath); err == nil && !force {
		return "", fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
	}

	if err := osMkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := osWriteFile(configPath, config.ExampleConfig, 0600); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}
	return configPath, nil
}

func newManifestCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Print the Slack app manifest for Socket Mode",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := stdout.Write(config.SlackManifest)
			return err
		},
	}
}
