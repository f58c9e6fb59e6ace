package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("When writing into a missing directory", func() {
			err := WriteAtomic("out/themes/theme.json", []byte(`{"name":"x"}`))

			Convey("Then the document lands at its final path", func() {
				So(err, ShouldBeNil)
				data := lo.Must(API().ReadFile("out/themes/theme.json"))
				So(string(data), ShouldEqual, `{"name":"x"}`)
			})

			Convey("And no temporary file is left behind", func() {
				So(lo.Must(API().Exists("out/themes/theme.json.tmp")), ShouldBeFalse)
			})
		})

		Convey("When overwriting an existing document", func() {
			So(WriteAtomic("theme.json", []byte("old")), ShouldBeNil)
			So(WriteAtomic("theme.json", []byte("new")), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("theme.json"))), ShouldEqual, "new")
		})
	})
}
