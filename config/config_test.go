package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/subplay/subplay/filesystem"
	"github.com/subplay/subplay/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.SeekToggleDebounce), ShouldEqual, 250)
			So(viper.GetInt(key.SeekHideControlsAfter), ShouldEqual, 3000)
			So(viper.GetStringSlice(key.SubtitlesExtensions), ShouldResemble, []string{"vtt", "srt"})
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("seek.jump.small")
			So(result, ShouldEqual, "seek_jump_small")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.SeekJumpSmall]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "SUBPLAY_SEEK_JUMP_SMALL")
		})

		Convey("typeName should match the default value", func() {
			So(field.typeName(), ShouldEqual, "int")
			list := Default[key.SubtitlesExtensions]
			So(list.typeName(), ShouldEqual, "[]string")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(Setup(), ShouldBeNil)

		Reset(func() {
			for name, field := range Default {
				viper.Set(name, field.Value)
			}
		})

		Convey("Defaults are valid", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("Non-positive delays are rejected", func() {
			viper.Set(key.SeekToggleDebounce, 0)
			So(Validate(), ShouldNotBeNil)
		})

		Convey("A volume cap below 100 is rejected", func() {
			viper.Set(key.PlayerVolumeMax, 50)
			So(Validate(), ShouldNotBeNil)
		})

		Convey("Unknown icon variants are rejected", func() {
			viper.Set(key.IconsVariant, "kaomoji")
			So(Validate().Error(), ShouldContainSubstring, key.IconsVariant)
		})

		Convey("Every problem is reported", func() {
			viper.Set(key.SeekJumpSmall, -1)
			viper.Set(key.LogsLevel, "loud")
			err := Validate()
			So(err.Error(), ShouldContainSubstring, key.SeekJumpSmall)
			So(err.Error(), ShouldContainSubstring, key.LogsLevel)
		})

		Convey("No extensions are fine when subtitles are off", func() {
			viper.Set(key.SubtitlesExtensions, []string{})
			So(Validate(), ShouldNotBeNil)

			viper.Set(key.SubtitlesEnable, false)
			So(Validate(), ShouldBeNil)
		})
	})
}
