// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subplay/subplay/constant"
	"github.com/subplay/subplay/filesystem"
	"github.com/subplay/subplay/icon"
	"github.com/subplay/subplay/key"
	"github.com/subplay/subplay/where"
)

// EnvKeyReplacer maps configuration keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.Subplay)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Subplay)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return Validate()
}

// Validate reports every setting the player cannot work with.
func Validate() error {
	var errs []error

	positive := func(k string) {
		if viper.GetInt(k) <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", k, viper.GetInt(k)))
		}
	}

	positive(key.SeekJumpSmall)
	positive(key.SeekJumpLarge)
	positive(key.SeekHideControlsAfter)
	positive(key.SeekToggleDebounce)

	// Gain 1 must stay audible at full volume.
	if v := viper.GetInt(key.PlayerVolumeMax); v < 100 {
		errs = append(errs, fmt.Errorf("%s must be at least 100, got %d", key.PlayerVolumeMax, v))
	}

	if w := viper.GetInt(key.TUISliderWidth); w < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %d", key.TUISliderWidth, w))
	}

	if len(lo.Compact(viper.GetStringSlice(key.SubtitlesExtensions))) == 0 && viper.GetBool(key.SubtitlesEnable) {
		errs = append(errs, fmt.Errorf("%s is empty while %s is on", key.SubtitlesExtensions, key.SubtitlesEnable))
	}

	if variant := viper.GetString(key.IconsVariant); !lo.Contains(icon.AvailableVariants(), variant) {
		errs = append(errs, fmt.Errorf("%s: unknown variant %q", key.IconsVariant, variant))
	}

	if _, err := logrus.ParseLevel(viper.GetString(key.LogsLevel)); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", key.LogsLevel, err))
	}

	return errors.Join(errs...)
}
