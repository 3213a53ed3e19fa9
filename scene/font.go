package scene

import (
	"strings"
	"sync"

	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/boxstyle/style/css"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// faceKey identifies a font face: size in pixels, monospace, bold, italic.
type faceKey struct {
	size               float64
	mono, bold, italic bool
}

// ttf[mono][bold][italic]
var ttf = [2][2][2][]byte{
	{{goregular.TTF, goitalic.TTF}, {gobold.TTF, gobolditalic.TTF}},
	{{gomono.TTF, gomonoitalic.TTF}, {gomonobold.TTF, gomonobolditalic.TTF}},
}

var parsed = struct {
	sync.Mutex
	fonts [2][2][2]*opentype.Font
}{}

// Face returns a font face for the font properties of a resolved style.
// Faces are taken from the Go font family; font families containing "mono"
// select Go Mono. Sizes are converted at 72 DPI, i.e. one point is one
// pixel. If st is nil, the face for the default font is returned.
//
// Faces are cached per tree. t may be nil, in which case a fresh face is
// created for every call.
func (t *Tree) Face(st *style.Style) font.Face {
	if st == nil {
		st = style.New()
	}
	key := faceKey{
		size:   float64(css.FontSize(st)) / float64(dimen.PT),
		mono:   strings.Contains(strings.ToLower(string(st.Font().Family())), "mono"),
		bold:   css.IsBold(st),
		italic: css.IsItalic(st),
	}
	if t != nil {
		if face, ok := t.faces[key]; ok {
			return face
		}
	}
	face, err := newFace(key)
	if err != nil {
		tracer().Errorf("cannot create font face: %v", err)
		return basicfont.Face7x13
	}
	if t != nil {
		if t.faces == nil {
			t.faces = make(map[faceKey]font.Face)
		}
		t.faces[key] = face
	}
	return face
}

func newFace(key faceKey) (font.Face, error) {
	m, b, i := b2i(key.mono), b2i(key.bold), b2i(key.italic)
	parsed.Lock()
	f := parsed.fonts[m][b][i]
	if f == nil {
		var err error
		if f, err = opentype.Parse(ttf[m][b][i]); err != nil {
			parsed.Unlock()
			return nil, err
		}
		parsed.fonts[m][b][i] = f
	}
	parsed.Unlock()
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// MeasureText returns the size of a text set in face, in whole pixels.
// Lines are separated by newlines; the width is the width of the longest
// line, the height is the line height times the number of lines.
func MeasureText(face font.Face, text string) (w, h int) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if lw := font.MeasureString(face, line).Ceil(); lw > w {
			w = lw
		}
	}
	return w, len(lines) * face.Metrics().Height.Ceil()
}
