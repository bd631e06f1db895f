package log

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/subplay/subplay/filesystem"
	"github.com/subplay/subplay/key"
	"github.com/subplay/subplay/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Then nothing is enabled", func() {
			So(Enabled(), ShouldBeFalse)
		})

		Convey("Then WithFields returns a discarding entry", func() {
			entry := WithFields(logrus.Fields{"cue": 1})
			So(entry, ShouldNotBeNil)
			So(entry.Logger, ShouldNotEqual, logrus.StandardLogger())
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("Then a log file is created under the logs directory", func() {
			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldNotBeEmpty)
			So(filepath.Ext(files[0].Name()), ShouldEqual, ".log")
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})
	})
}
