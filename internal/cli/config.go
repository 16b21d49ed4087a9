package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/vardovia/vardovia/internal/config"
	"github.com/vardovia/vardovia/internal/display"
	"github.com/vardovia/vardovia/internal/prompt"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		cfgPath := config.ConfigFile()

		if jsonOutput {
			return display.OutputJSON(outWriter, display.ConfigShowJSON{
				Server: display.ConfigServerJSON{
					URL:     cfg.ServerURL(),
					Timeout: cfg.Server.Timeout,
				},
				Display: display.ConfigDisplayJSON{
					ShowStatus: cfg.Display.ShowStatus,
					ShowImages: cfg.Display.ShowImages,
					Colors:     cfg.Display.Colors,
					WrapWidth:  cfg.Display.WrapWidth,
				},
				Translate: display.ConfigTranslateJSON{
					Glossary: cfg.Translate.Glossary,
				},
				Path: cfgPath,
			})
		}

		if quiet {
			outln(cfgPath)
			return nil
		}

		out("Config: %s\n\n", cfgPath)
		_ = toml.NewEncoder(outWriter).Encode(cfg)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show directory paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		showCache, _ := cmd.Flags().GetBool("cache")

		if jsonOutput {
			if showCache {
				return display.OutputJSON(outWriter, map[string]string{"cache_dir": config.CacheDir()})
			}
			return display.OutputJSON(outWriter, map[string]string{
				"config_dir":  config.ConfigDir(),
				"config_file": config.ConfigFile(),
				"glossary":    config.GlossaryFile(),
				"cache_dir":   config.CacheDir(),
			})
		}

		if showCache {
			outln(config.CacheDir())
			return nil
		}
		if quiet {
			outln(config.ConfigDir())
			return nil
		}

		out("Config dir:    %s\n", config.ConfigDir())
		out("Config file:   %s\n", config.ConfigFile())
		out("Glossary:      %s\n", config.GlossaryFile())
		out("Cache dir:     %s\n", config.CacheDir())
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm && !jsonOutput {
			ok, err := prompt.Default.Confirm(prompt.ConfirmConfig{
				Title: "Reset configuration to defaults?",
			})
			if err != nil {
				return err
			}
			if !ok {
				outln("Reset cancelled")
				return nil
			}
		}

		cfgPath := config.ConfigFile()
		if err := os.Remove(cfgPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("resetting config: %w", err)
		}
		if err := config.Save(config.DefaultConfig(), cfgPath); err != nil {
			return fmt.Errorf("resetting config: %w", err)
		}
		if _, err := config.Reload(); err != nil {
			return fmt.Errorf("reloading config: %w", err)
		}

		if jsonOutput {
			return display.OutputJSON(outWriter, display.ActionResultJSON{
				Success: true,
				Reset:   true,
				Message: "Configuration reset to defaults",
			})
		}

		outln("✓ Configuration reset to defaults")
		return nil
	},
}

func init() {
	configPathCmd.Flags().BoolP("cache", "c", false, "Show cache directory")
	configResetCmd.Flags().BoolP("confirm", "y", false, "Skip confirmation")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}
