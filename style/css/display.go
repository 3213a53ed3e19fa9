package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boxstyle/style"
)

// DisplayMode is a type for the style property "display".
type DisplayMode uint16

// Flags for display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // outer display = none
	BlockMode       DisplayMode = 0x0002 // block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // inline context
	FlexMode        DisplayMode = 0x0040 // inner display = flex
	GridMode        DisplayMode = 0x0080 // inner display = grid
	InnerBlockMode  DisplayMode = 0x0200 // inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // inner inline mode
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, FlexMode, GridMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	FlexMode:        "FlexMode",
	GridMode:        "GridMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

func (disp DisplayMode) String() string {
	if s, ok := displayModeNames[disp]; ok {
		return s
	}
	return disp.FullString()
}

// IsNone is true for nodes which do not take part in layout and hit-testing.
func (disp DisplayMode) IsNone() bool {
	return disp.Contains(DisplayNone)
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var names []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			names = append(names, displayModeNames[m])
		}
	}
	return strings.Join(names, " ")
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp.Contains(DisplayNone):
		return "∅"
	case disp.Contains(FlexMode):
		return "▤"
	case disp.Contains(GridMode):
		return "◰"
	case disp.Contains(BlockMode) || disp.Contains(InnerBlockMode):
		return "▩"
	case disp.Contains(InlineMode) || disp.Contains(InnerInlineMode):
		return "►"
	case disp == NoMode:
		return "–"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property (outer and inner).
// Unknown modes are reported as an error and treated as block.
func ParseDisplay(display style.Property) (DisplayMode, error) {
	switch strings.ToLower(string(display)) {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "flex":
		return BlockMode | FlexMode, nil
	case "grid":
		return BlockMode | GridMode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}
