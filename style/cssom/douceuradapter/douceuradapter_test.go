package douceuradapter

import (
	"errors"
	"testing"

	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/boxstyle/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var sheet = `
* { color: #333333; }
.Button, .Label:first-child {
	border: 2px solid red;
	padding: 4 8;
}
#ok:hover { background-color: rgb(255, 255, 0) !important; }
@media print { .Button { color: black; } }
`

func TestParseSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.cssom")
	defer teardown()
	//
	css, err := Parse(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if css.Empty() {
		t.Fatalf("expected stylesheet to contain rules")
	}
	rules := css.Rules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 qualified rules, have %d", len(rules))
	}
	decl := rules[1].Declarations()
	if len(decl) != 2 || decl[1].Key != "padding" || decl[1].Value != "4 8" {
		t.Errorf("expected padding of '4 8' as second declaration, have %v", decl)
	}
	if decl = rules[2].Declarations(); len(decl) != 1 || !decl[0].Important {
		t.Errorf("expected background-color to be !important, have %v", decl)
	}
}

func TestRepeatedKeysKeepDeclarationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.cssom")
	defer teardown()
	//
	reg := cssom.NewRegistry()
	err := LoadStylesheet(reg, `.Panel { margin: 1; margin-left: 3; margin: 2; }`)
	if err != nil {
		t.Fatal(err)
	}
	panel := reg.Lookup(cssom.Type("Panel"))
	if panel == nil {
		t.Fatalf("expected rule for .Panel")
	}
	if ml := panel.MustLeaf("margin-left"); ml != "2" {
		t.Errorf("expected last shorthand to win for margin-left, have %q", ml)
	}
	if mt := panel.MustLeaf("margin-top"); mt != "2" {
		t.Errorf("expected margin-top of 2, have %q", mt)
	}
}

func TestLoadStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.cssom")
	defer teardown()
	//
	reg := cssom.NewRegistry()
	if err := LoadStylesheet(reg, sheet); err != nil {
		t.Fatal(err)
	}
	lbl := reg.Lookup(cssom.Type("Label").WithState("first-child"))
	if lbl == nil {
		t.Fatalf("expected rule for .Label:first-child")
	}
	if lbl.MustLeaf("border-left-width") != "2px" || lbl.MustLeaf("padding-right") != "8" {
		t.Errorf("expected shorthands to be expanded, have %s", lbl)
	}
	hover := reg.Lookup(cssom.ID("ok").WithState("hover"))
	if hover == nil || hover.MustLeaf("background-color") != "rgb(255, 255, 0)" {
		t.Errorf("expected background color for #ok:hover, have %v", hover)
	}
	if c := reg.Lookup(cssom.Universal()).Color(); c != style.Property("#333333") {
		t.Errorf("expected universal color to be merged over defaults, have %s", c)
	}
}

func TestLoadStylesheetIsAtomic(t *testing.T) {
	reg := cssom.NewRegistry()
	err := LoadStylesheet(reg, `.Button { color: blue; } .Label { margin: wide; }`)
	if !errors.Is(err, style.ErrInvalidStyleValue) {
		t.Errorf("expected invalid value error, have %v", err)
	}
	if reg.Lookup(cssom.Type("Button")) != nil {
		t.Errorf("expected registry to be unchanged after failed load")
	}
	err = LoadStylesheet(reg, `div p { color: blue; }`)
	if !errors.Is(err, cssom.ErrInvalidSelector) {
		t.Errorf("expected invalid selector error, have %v", err)
	}
}
