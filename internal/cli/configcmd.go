package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/real-or-random/bips2bib/internal/config"
	"github.com/real-or-random/bips2bib/internal/display"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigFile()
		if !configInitForce && fileExists(path) {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
		if err := config.Save(config.DefaultConfig(), path); err != nil {
			return err
		}
		if _, err := config.Reload(); err != nil {
			return err
		}
		if !quiet {
			out("Wrote default config to %s.\n", path)
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		cfgPath := config.ConfigFile()

		if jsonOutput {
			return display.OutputJSON(outWriter, struct {
				Config config.Config `json:"config"`
				Path   string        `json:"path"`
			}{cfg, cfgPath})
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
	Short: "Show configuration file paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return display.OutputJSON(outWriter, map[string]string{
				"config_dir":   config.ConfigDir(),
				"config_file":  config.ConfigFile(),
				"aliases_file": config.AliasesFile(),
			})
		}

		if quiet {
			outln(config.ConfigDir())
			return nil
		}

		out("Config dir:   %s\n", config.ConfigDir())
		out("Config file:  %s\n", config.ConfigFile())
		out("Aliases file: %s\n", config.AliasesFile())
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
