package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/prism/internal/app"
	"github.com/dshills/prism/internal/classify"
	"github.com/dshills/prism/internal/config"
	"github.com/dshills/prism/internal/config/loader"
	"github.com/dshills/prism/internal/document"
)

var (
	cfgFile  string
	logLevel string
	quiet    bool
	noColor  bool
	mimeType string

	// Classifier selection, shared by the highlighting commands.
	language  string
	luaScript string
)

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Rainbow bracket highlighting for source files",
	Long: `Prism colors matching braces, brackets, and parentheses by nesting
depth. Each bracket family nests independently, and brackets inside
strings and comments are skipped when the file's language is known.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if quiet {
			app.SetLogger(app.NullLogger)
			return nil
		}
		app.SetLogger(app.NewLogger(app.LoggerConfig{
			Level:  app.ParseLogLevel(logLevel),
			Output: os.Stderr,
			Prefix: "prism",
		}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: <user config dir>/prism/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log verbosity: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress log output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().StringVar(&mimeType, "mime", "",
		"MIME type override for opened files and stdin")
}

// classifierFlags registers the shared classifier selection flags.
func classifierFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&language, "language", "l", "",
		"lexer name override, e.g. go, rust, python")
	cmd.Flags().StringVar(&luaScript, "lua", "",
		"Lua classifier script (defines classify_at)")
}

// configPath resolves the config file path from the flag or the default.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return loader.DefaultPath()
}

// loadOptions builds the effective options: defaults, then the config
// file, then PRISM_* environment variables.
func loadOptions() (config.Options, error) {
	path, err := configPath()
	if err != nil {
		return config.Options{}, err
	}
	opts, err := loader.LoadOrDefault(path)
	if err != nil {
		return config.Options{}, err
	}
	return loader.ApplyEnv(opts), nil
}

// newService builds a service from the effective options and the
// classifier flags.
func newService() (*app.Service, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}
	return app.New(opts, app.WithClassifierFactory(classifierFactory()))
}

// classifierFactory honors --lua and --language before falling back to
// lexer detection by MIME type.
func classifierFactory() app.ClassifierFactory {
	script, lang := luaScript, language
	return func(doc *document.Snapshot) (classify.Classifier, error) {
		switch {
		case script != "":
			return classify.NewLuaFromFile(script, doc)
		case lang != "":
			return classify.NewChromaForLanguage(lang, doc.Text())
		default:
			return classify.NewChroma(doc)
		}
	}
}

// openTarget opens the named file, or stdin when the name is "-".
// The --mime flag overrides the detected MIME type.
func openTarget(svc *app.Service, name string) (*document.Snapshot, error) {
	if name != "-" {
		return svc.OpenFileAs(name, mimeType)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	mime := mimeType
	if mime == "" {
		mime = "text/plain"
	}
	return svc.OpenString("stdin", mime, string(data))
}
