// Package cli provides the command-line interface for Prism.
package cli

import (
	"strings"

	"github.com/jmylchreest/prism/internal/colour"
	"github.com/spf13/pflag"
)

// formatValue is a pflag.Value for colour format flags, so a bad
// --to/--from value fails at flag parse time with the supported names
// in the message.
type formatValue struct {
	format    colour.Format
	auto      bool
	allowAuto bool
}

var _ pflag.Value = (*formatValue)(nil)

// newFormatValue creates a format flag value. allowAuto admits the
// "auto" pseudo-format for auto-detected input.
func newFormatValue(def colour.Format, allowAuto bool) *formatValue {
	return &formatValue{format: def, auto: allowAuto, allowAuto: allowAuto}
}

func (f *formatValue) String() string {
	if f.auto {
		return "auto"
	}
	return f.format.String()
}

func (f *formatValue) Type() string {
	return "format"
}

func (f *formatValue) Set(s string) error {
	if f.allowAuto && strings.EqualFold(strings.TrimSpace(s), "auto") {
		f.auto = true
		return nil
	}
	format, err := colour.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	f.auto = false
	return nil
}
