package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/themekit/themekit/key"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Palette

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(target), ShouldBeEmpty)
		})
	})

	Convey("Every icon defines every variant", t, func() {
		for _, def := range icons {
			for _, s := range []string{def.emoji, def.nerd, def.plain, def.kaomoji, def.squares} {
				So(s, ShouldNotBeEmpty)
			}
		}
	})

	Convey("An unregistered icon renders empty", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(Get(Icon(0)), ShouldBeEmpty)
	})
}
