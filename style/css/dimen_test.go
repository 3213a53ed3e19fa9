package css_test

import (
	"testing"

	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/boxstyle/style/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	if !ten.IsAbsolute() || ten.Unwrap() != 10*dimen.PT {
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}
	auto := css.Auto()
	if !auto.IsAuto() || auto.Unwrap() != 0 {
		t.Errorf("expected dimen auto to be auto without value, isn't: %#v", auto)
	}
	if css.Pixels(3).String() != "3px" || css.Inherit().String() != "inherit" {
		t.Errorf("unexpected string forms %s, %s", css.Pixels(3), css.Inherit())
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	zehn := css.DimenPattern[int](ten).OneOf(css.DimenPatterns[int]{
		Just:    ten.Px(),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}
	kind := css.DimenPattern[string](css.Initial()).OneOf(css.DimenPatterns[string]{
		Auto:    "auto",
		Initial: "initial",
		Default: "unset",
	})
	if kind != "initial" {
		t.Errorf("expected initial, have %s", kind)
	}
	if x := css.DimenPattern[int](css.ParseDimen("wide")).OneOf(css.DimenPatterns[int]{Just: 1, Default: -1}); x != -1 {
		t.Errorf("expected unset dimension to match default, have %d", x)
	}
}

func TestParseDimen(t *testing.T) {
	for input, px := range map[style.Property]int{
		"12":   12,
		"12px": 12,
		"3pt":  3,
		"-4":   -4,
		"2.6":  3,
	} {
		d := css.ParseDimen(input)
		if !d.IsAbsolute() || d.Px() != px {
			t.Errorf("expected %q to be %dpx, is %s", input, px, d)
		}
	}
	if !css.ParseDimen("auto").IsAuto() {
		t.Errorf("expected auto to be parsed as auto")
	}
	if d := css.ParseDimen("wide"); !d.IsUnset() {
		t.Errorf("expected illegal input to yield an unset dimension, have %s", d)
	}
	if css.BorderWidth("thick").Px() != 5 {
		t.Errorf("expected border width 'thick' to be 5px")
	}
}
