package colormath

import (
	"fmt"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var samples = []string{
	"#000000", "#ffffff", "#0891b2", "#00d4ff", "#ff00ff", "#8b5cf6", "#F43F5E", "#7f7f7f",
}

var amounts = []float64{0, 0.1, 0.2, 0.3, 0.5, 1}

func TestLightenDarken(t *testing.T) {
	Convey("Given known colors", t, func() {
		Convey("Darken subtracts round(255*amount) per channel", func() {
			So(Darken("#0891b2", 0.3), ShouldEqual, "#004465")
			So(Darken("#00d4ff", 0.3), ShouldEqual, "#0087b2")
		})

		Convey("Lighten adds round(255*amount) per channel", func() {
			So(Lighten("#0891b2", 0.3), ShouldEqual, "#55deff")
			So(Lighten("#06b6d4", 0.2), ShouldEqual, "#39e9ff")
		})

		Convey("Output is lowercase and zero padded", func() {
			So(Lighten("#000000", 0.01), ShouldEqual, "#030303")
			So(Darken("#ABCDEF", 0), ShouldEqual, "#abcdef")
		})

		Convey("Channels clamp at the bounds", func() {
			So(Lighten("#ffffff", 0.5), ShouldEqual, "#ffffff")
			So(Darken("#000000", 0.5), ShouldEqual, "#000000")
			So(Lighten("#000000", 1), ShouldEqual, "#ffffff")
		})
	})

	Convey("For every sample and amount", t, func() {
		for _, c := range samples {
			for _, a := range amounts {
				Convey(fmt.Sprintf("%s by %v", c, a), func() {
					r0, g0, b0 := Channels(c)
					r1, g1, b1 := Channels(Lighten(Darken(c, a), a))

					Convey("lighten(darken(c)) stays within [0,255] and never exceeds the original when nothing clamped at 0", func() {
						for _, v := range []int{r1, g1, b1} {
							So(v, ShouldBeBetweenOrEqual, 0, 255)
						}
						d := int(math.Round(255 * a))
						for _, pair := range [][2]int{{r0, r1}, {g0, g1}, {b0, b1}} {
							if pair[0] >= d {
								So(pair[1], ShouldEqual, pair[0])
							} else {
								So(pair[1], ShouldBeLessThanOrEqualTo, 255)
								So(pair[1], ShouldBeGreaterThanOrEqualTo, min(d, 255))
							}
						}
					})

					Convey("darken never goes below zero", func() {
						r, g, b := Channels(Darken(c, a))
						for _, v := range []int{r, g, b} {
							So(v, ShouldBeGreaterThanOrEqualTo, 0)
						}
					})
				})
			}
		}
	})
}

func TestTranslucent(t *testing.T) {
	Convey("Translucent", t, func() {
		So(Translucent("#0891b2", 0.1), ShouldEqual, "rgba(8, 145, 178, 0.1)")
		So(Translucent("#ef4444", 0.5), ShouldEqual, "rgba(239, 68, 68, 0.5)")
		So(Translucent("#ffffff", 1), ShouldEqual, "rgba(255, 255, 255, 1)")
	})

	Convey("FormatAlpha trims float noise", t, func() {
		So(FormatAlpha(0.1*1.5), ShouldEqual, "0.15")
		So(FormatAlpha(0.3*3), ShouldEqual, "0.9")
		So(FormatAlpha(0.05), ShouldEqual, "0.05")
	})

	Convey("Malformed input decodes as black", t, func() {
		r, g, b := Channels("not-a-color")
		So([]int{r, g, b}, ShouldResemble, []int{0, 0, 0})
	})
}
