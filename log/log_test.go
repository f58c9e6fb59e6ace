package log

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/themekit/themekit/filesystem"
	"github.com/themekit/themekit/key"
	"github.com/themekit/themekit/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup succeeds and emissions are discarded", func() {
			So(Setup(), ShouldBeNil)
			So(func() { Info("ignored") }, ShouldNotPanic)
			So(func() { WithFields(map[string]any{"a": 1}).Info("ignored") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup creates a dated log file in the logs directory", func() {
			So(Setup(), ShouldBeNil)
			Info("hello")

			entries := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(entries, ShouldHaveLength, 1)
			So(filepath.Ext(entries[0].Name()), ShouldEqual, ".log")
		})
	})
}
