package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSwatch(t *testing.T) {
	Convey("Swatch", t, func() {
		Convey("Should end with the hex value", func() {
			So(Swatch("#0891b2"), ShouldEndWith, "#0891b2")
		})

		Convey("Swatches should render one block per color", func() {
			So(Swatches(), ShouldBeEmpty)
			So(Swatches("#000000", "#ffffff"), ShouldContainSubstring, "  ")
		})
	})
}
