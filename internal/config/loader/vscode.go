package loader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/prism/internal/config"
)

// VS Code stores bracket colorization under two settings keys. The
// color slots cap at six; our remaining palette slots are untouched by
// an import.
const (
	vscodeEnabledPath = `editor\.bracketPairColorization\.enabled`
	vscodeColorPrefix = `workbench\.colorCustomizations.editorBracketHighlight\.foreground`
	vscodeColorSlots  = 6
)

// ImportVSCode overlays bracket colorization settings from a VS Code
// settings.json onto the given options. Settings absent from the JSON
// leave their option untouched.
func ImportVSCode(data []byte, base config.Options) (config.Options, error) {
	if !gjson.ValidBytes(data) {
		return base, fmt.Errorf("invalid settings JSON")
	}

	out := base.Clone()

	if v := gjson.GetBytes(data, vscodeEnabledPath); v.Exists() {
		out.Enabled = v.Bool()
	}

	var colors []config.ColorOption
	for i := 1; i <= vscodeColorSlots; i++ {
		v := gjson.GetBytes(data, vscodeColorPrefix+strconv.Itoa(i))
		if !v.Exists() {
			break
		}
		colors = append(colors, config.ColorOption{Hex: v.String(), Enabled: true})
	}
	if len(colors) > 0 {
		out.Colors = colors
	}

	if err := out.Validate(); err != nil {
		return base, fmt.Errorf("imported settings: %w", err)
	}
	return out, nil
}

// ImportVSCodeFile reads a VS Code settings.json and overlays its
// bracket colorization settings onto the given options.
func ImportVSCodeFile(path string, base config.Options) (config.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read settings: %w", err)
	}
	return ImportVSCode(data, base)
}

// ExportVSCode writes bracket colorization settings into VS Code
// settings JSON, preserving unrelated keys. Empty input starts a new
// settings object.
func ExportVSCode(data []byte, opts config.Options) ([]byte, error) {
	if len(data) == 0 {
		data = []byte("{}")
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid settings JSON")
	}

	out, err := sjson.SetBytes(data, vscodeEnabledPath, opts.Enabled)
	if err != nil {
		return nil, fmt.Errorf("set enabled: %w", err)
	}

	slot := 1
	for _, c := range opts.Colors {
		if !c.Enabled {
			continue
		}
		if slot > vscodeColorSlots {
			break
		}
		out, err = sjson.SetBytes(out, vscodeColorPrefix+strconv.Itoa(slot), c.Hex)
		if err != nil {
			return nil, fmt.Errorf("set color %d: %w", slot, err)
		}
		slot++
	}

	return out, nil
}
