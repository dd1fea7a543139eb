package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Prefs persists operator preferences to a local file, the console's
// stand-in for browser local storage.
type Prefs struct {
	v    *viper.Viper
	path string
}

func NewPrefs(path string) *Prefs {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("theme", ThemeLight)

	// Missing file just means defaults
	_ = v.ReadInConfig()

	return &Prefs{v: v, path: path}
}

func (p *Prefs) Theme() string {
	return p.v.GetString("theme")
}

func (p *Prefs) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("invalid theme %q", theme)
	}

	p.v.Set("theme", theme)
	if err := p.v.WriteConfigAs(p.path); err != nil {
		return fmt.Errorf("write prefs %s: %w", p.path, err)
	}

	return nil
}
