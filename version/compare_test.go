package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		Convey("Each component is compared in order", func() {
			for _, tc := range []struct {
				a, b string
				want int
			}{
				{"2.0.0", "2.0.0", 0},
				{"2.1.0", "2.0.9", 1},
				{"2.0.0", "10.0.0", -1},
				{"v2.0.1", "2.0.0", 1},
			} {
				got, err := Compare(tc.a, tc.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, tc.want)
			}
		})

		Convey("Malformed versions are an error", func() {
			_, err := Compare("two", "2.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDocumentVersions(t *testing.T) {
	Convey("Given document versions", t, func() {
		Convey("Only the 2.x line is supported", func() {
			So(Supported("2.0.0"), ShouldBeTrue)
			So(Supported("2.5.1"), ShouldBeTrue)
			So(Supported("1.0.0"), ShouldBeFalse)
			So(Supported(""), ShouldBeFalse)
		})

		Convey("Newer compares against the generated version", func() {
			So(Newer("2.1.0"), ShouldBeTrue)
			So(Newer("2.0.0"), ShouldBeFalse)
			So(Newer("2.x"), ShouldBeFalse)
		})
	})
}
