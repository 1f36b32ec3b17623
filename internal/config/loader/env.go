package loader

import (
	"os"
	"strconv"
	"strings"

	"github.com/dshills/prism/internal/config"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PRISM_"

// Environment variables recognized by ApplyEnv.
const (
	EnvEnabled      = EnvPrefix + "ENABLED"
	EnvMimeRegex    = EnvPrefix + "MIME_REGEX"
	EnvBraces       = EnvPrefix + "BRACES"
	EnvBrackets     = EnvPrefix + "BRACKETS"
	EnvParentheses  = EnvPrefix + "PARENTHESES"
	EnvSkipComments = EnvPrefix + "SKIP_COMMENTS"
	EnvSkipStrings  = EnvPrefix + "SKIP_STRINGS"
	EnvColors       = EnvPrefix + "COLORS"
)

// ApplyEnv overlays environment variable overrides onto the given
// options. Unset variables leave their option untouched; values that
// fail to parse are ignored so a typo cannot disable highlighting.
//
// PRISM_COLORS takes a comma-separated hex color list; all listed
// colors are enabled.
func ApplyEnv(opts config.Options) config.Options {
	out := opts.Clone()

	applyBool(EnvEnabled, &out.Enabled)
	applyBool(EnvBraces, &out.Braces)
	applyBool(EnvBrackets, &out.Brackets)
	applyBool(EnvParentheses, &out.Parentheses)
	applyBool(EnvSkipComments, &out.SkipComments)
	applyBool(EnvSkipStrings, &out.SkipStrings)

	if v, ok := os.LookupEnv(EnvMimeRegex); ok && v != "" {
		out.MimeTypeRegex = v
	}

	if v, ok := os.LookupEnv(EnvColors); ok && v != "" {
		var colors []config.ColorOption
		for _, hex := range strings.Split(v, ",") {
			hex = strings.TrimSpace(hex)
			if hex == "" {
				continue
			}
			colors = append(colors, config.ColorOption{Hex: hex, Enabled: true})
		}
		if len(colors) > 0 {
			out.Colors = colors
		}
	}

	return out
}

func applyBool(env string, target *bool) {
	v, ok := os.LookupEnv(env)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return
	}
	*target = b
}
