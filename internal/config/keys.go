package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/prism/internal/palette"
)

// Option keys understood by Get and Set. They match the field names in
// the TOML configuration file.
const (
	KeyEnabled      = "enabled"
	KeyMimeRegex    = "mime_type_regex"
	KeyBraces       = "braces"
	KeyBrackets     = "brackets"
	KeyParentheses  = "parentheses"
	KeySkipComments = "skip_comments"
	KeySkipStrings  = "skip_strings"
	KeyColors       = "colors"
)

// Keys lists the option keys in display order. Palette slots are also
// addressable individually as colors.N.hex and colors.N.enabled.
func Keys() []string {
	return []string{
		KeyEnabled, KeyMimeRegex,
		KeyBraces, KeyBrackets, KeyParentheses,
		KeySkipComments, KeySkipStrings,
		KeyColors,
	}
}

// Get returns the value of an option key as a string. The colors key
// yields a comma-separated hex list covering every slot.
func (o Options) Get(key string) (string, error) {
	switch key {
	case KeyEnabled:
		return strconv.FormatBool(o.Enabled), nil
	case KeyMimeRegex:
		return o.mimeRegex(), nil
	case KeyBraces:
		return strconv.FormatBool(o.Braces), nil
	case KeyBrackets:
		return strconv.FormatBool(o.Brackets), nil
	case KeyParentheses:
		return strconv.FormatBool(o.Parentheses), nil
	case KeySkipComments:
		return strconv.FormatBool(o.SkipComments), nil
	case KeySkipStrings:
		return strconv.FormatBool(o.SkipStrings), nil
	case KeyColors:
		hexes := make([]string, len(o.Colors))
		for i, c := range o.Colors {
			hexes[i] = c.Hex
		}
		return strings.Join(hexes, ","), nil
	}

	if i, field, ok := colorKey(key); ok && i < len(o.Colors) {
		switch field {
		case "hex":
			return o.Colors[i].Hex, nil
		case "enabled":
			return strconv.FormatBool(o.Colors[i].Enabled), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Set assigns an option key from its string form. Boolean keys take
// the values strconv.ParseBool accepts; mime_type_regex must compile;
// colors takes a comma-separated hex list and enables every listed
// slot, replacing the palette. Invalid values leave the options
// untouched.
func (o *Options) Set(key, value string) error {
	switch key {
	case KeyEnabled:
		return setBool(&o.Enabled, key, value)
	case KeyBraces:
		return setBool(&o.Braces, key, value)
	case KeyBrackets:
		return setBool(&o.Brackets, key, value)
	case KeyParentheses:
		return setBool(&o.Parentheses, key, value)
	case KeySkipComments:
		return setBool(&o.SkipComments, key, value)
	case KeySkipStrings:
		return setBool(&o.SkipStrings, key, value)
	case KeyMimeRegex:
		if _, err := regexp.Compile(value); err != nil {
			return &OptionError{Field: key, Message: err.Error(), Err: err}
		}
		o.MimeTypeRegex = value
		return nil
	case KeyColors:
		colors, err := parseColorList(value)
		if err != nil {
			return err
		}
		o.Colors = colors
		return nil
	}

	if i, field, ok := colorKey(key); ok {
		if i >= len(o.Colors) {
			return &OptionError{
				Field:   key,
				Message: fmt.Sprintf("no palette slot %d", i),
				Err:     ErrUnknownKey,
			}
		}
		switch field {
		case "hex":
			if _, err := palette.ParseHex(value); err != nil {
				return &OptionError{Field: key, Message: err.Error(), Err: err}
			}
			o.Colors[i].Hex = value
			return nil
		case "enabled":
			return setBool(&o.Colors[i].Enabled, key, value)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// colorKey splits a colors.N.field key into its slot index and field.
func colorKey(key string) (int, string, bool) {
	rest, ok := strings.CutPrefix(key, KeyColors+".")
	if !ok {
		return 0, "", false
	}
	idx, field, ok := strings.Cut(rest, ".")
	if !ok {
		return 0, "", false
	}
	i, err := strconv.Atoi(idx)
	if err != nil || i < 0 {
		return 0, "", false
	}
	return i, field, true
}

func parseColorList(value string) ([]ColorOption, error) {
	var colors []ColorOption
	for _, hex := range strings.Split(value, ",") {
		hex = strings.TrimSpace(hex)
		if hex == "" {
			continue
		}
		if _, err := palette.ParseHex(hex); err != nil {
			return nil, &OptionError{Field: KeyColors, Message: err.Error(), Err: err}
		}
		colors = append(colors, ColorOption{Hex: hex, Enabled: true})
	}
	if len(colors) > palette.MaxColors {
		return nil, &OptionError{
			Field:   KeyColors,
			Message: fmt.Sprintf("%d entries exceeds maximum of %d", len(colors), palette.MaxColors),
			Err:     ErrTooManyColors,
		}
	}
	return colors, nil
}

func setBool(target *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return &OptionError{
			Field:   key,
			Message: fmt.Sprintf("%q is not a boolean", value),
			Err:     err,
		}
	}
	*target = b
	return nil
}
