// Package icon renders the symbols of the control surface and CLI output.
//
// Icons come in three variants (emoji, nerd-font glyphs and plain ASCII)
// chosen by the icons.variant setting.
package icon

import (
	"github.com/spf13/viper"
	"github.com/subplay/subplay/key"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

// Get renders the icon in the configured variant. Unknown variants render plain,
// since the control surface buttons must never come out empty.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	default:
		return d.plain
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
