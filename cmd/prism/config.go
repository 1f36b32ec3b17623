package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/prism/internal/config"
	"github.com/dshills/prism/internal/config/loader"
)

var (
	configForce bool
	configOut   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the prism configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, path)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one effective option value",
	Long: `Get prints an option after applying the config file and PRISM_*
environment variables on top of the defaults.

Keys: ` + strings.Join(config.Keys(), ", ") + `.
Palette slots are also addressable as colors.N.hex and colors.N.enabled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		value, err := opts.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set an option in the config file",
	Long: `Set rewrites one option in the config file, creating the file from
defaults when it does not exist. Environment variables are not
consulted; they would otherwise leak into the saved file.

Keys: ` + strings.Join(config.Keys(), ", ") + `.
Palette slots are also addressable as colors.N.hex and colors.N.enabled;
colors takes a comma-separated hex list and enables every listed slot.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		opts, err := loader.LoadOrDefault(path)
		if err != nil {
			return err
		}
		if err := opts.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := loader.Save(path, opts); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s = %s in %s\n", args[0], args[1], path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		if !configForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
		if err := loader.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "wrote", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Show prints the configuration after applying the config file and
PRISM_* environment variables on top of the defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		data, err := toml.Marshal(opts)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var configImportCmd = &cobra.Command{
	Use:   "import-vscode <settings.json>",
	Short: "Import VS Code bracket colorization settings",
	Long: `Import reads editor.bracketPairColorization.enabled and the
editorBracketHighlight foreground colors from a VS Code settings file
and writes them to the prism config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := loadOptions()
		if err != nil {
			return err
		}
		opts, err := loader.ImportVSCodeFile(args[0], base)
		if err != nil {
			return err
		}

		path := configOut
		if path == "" {
			if path, err = configPath(); err != nil {
				return err
			}
		}
		if err := loader.Save(path, opts); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "imported %d colors into %s\n", len(opts.Colors), path)
		return nil
	},
}

var configExportCmd = &cobra.Command{
	Use:   "export-vscode [settings.json]",
	Short: "Emit VS Code settings for the current configuration",
	Long: `Export prints VS Code settings JSON carrying the current bracket
colors. When an existing settings file is given, its other keys are
preserved and the bracket settings merged in.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}

		var existing []byte
		if len(args) == 1 {
			if existing, err = os.ReadFile(args[0]); err != nil {
				return err
			}
		}
		data, err := loader.ExportVSCode(existing, opts)
		if err != nil {
			return err
		}

		if configOut != "" {
			return os.WriteFile(configOut, data, 0o644)
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configImportCmd.Flags().StringVar(&configOut, "out", "", "write to this file instead of the config path")
	configExportCmd.Flags().StringVar(&configOut, "out", "", "write to this file instead of stdout")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configImportCmd)
	configCmd.AddCommand(configExportCmd)
	rootCmd.AddCommand(configCmd)
}
