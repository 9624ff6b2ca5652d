package core

// Field marks which parts of a Cell carry a value (bitmask).
// Unset parts are transparent, not black.
type Field uint8

const (
	FieldChar Field = 1 << iota
	FieldFg
	FieldBg
	FieldBold
	FieldUnderline
)

// Cell is one grid position's visual content. The zero value is the
// fully transparent cell. Unset parts must stay zeroed so that == is
// structural equality; build cells through the With* helpers.
type Cell struct {
	Fields    Field
	Ch        rune
	Fg        Color
	Bg        Color
	Bold      bool
	Underline bool
}

// Has reports whether every field in f carries a value
func (c Cell) Has(f Field) bool {
	return c.Fields&f == f
}

// WithChar returns a copy of the cell with its character set
func (c Cell) WithChar(ch rune) Cell {
	c.Fields |= FieldChar
	c.Ch = ch
	return c
}

// WithFg returns a copy of the cell with its foreground color set
func (c Cell) WithFg(col Color) Cell {
	c.Fields |= FieldFg
	c.Fg = col
	return c
}

// WithBg returns a copy of the cell with its background color set
func (c Cell) WithBg(col Color) Cell {
	c.Fields |= FieldBg
	c.Bg = col
	return c
}

// WithBold returns a copy of the cell with its bold flag set
func (c Cell) WithBold(b bool) Cell {
	c.Fields |= FieldBold
	c.Bold = b
	return c
}

// WithUnderline returns a copy of the cell with its underline flag set
func (c Cell) WithUnderline(b bool) Cell {
	c.Fields |= FieldUnderline
	c.Underline = b
	return c
}

// Compose combines top painted over bottom:
//   - character, bold, underline: top's value when present, else bottom's
//   - background: per-channel alpha composite when both present,
//     pass-through when only one side has a value
//   - foreground: as background, except the blend base is the bottom's
//     background when the bottom has no character. A foreground without
//     a glyph under it has nothing to color, so blending against the
//     bottom's foreground would show paint that was never visible.
func Compose(bottom, top Cell) Cell {
	var out Cell

	switch {
	case top.Has(FieldChar):
		out = out.WithChar(top.Ch)
	case bottom.Has(FieldChar):
		out = out.WithChar(bottom.Ch)
	}

	switch {
	case top.Has(FieldBg) && bottom.Has(FieldBg):
		out = out.WithBg(Over(top.Bg, bottom.Bg))
	case top.Has(FieldBg):
		out = out.WithBg(top.Bg)
	case bottom.Has(FieldBg):
		out = out.WithBg(bottom.Bg)
	}

	if top.Has(FieldFg) {
		if base, ok := fgBlendBase(bottom); ok {
			out = out.WithFg(Over(top.Fg, base))
		} else {
			out = out.WithFg(top.Fg)
		}
	} else if bottom.Has(FieldFg) {
		out = out.WithFg(bottom.Fg)
	}

	switch {
	case top.Has(FieldBold):
		out = out.WithBold(top.Bold)
	case bottom.Has(FieldBold):
		out = out.WithBold(bottom.Bold)
	}

	switch {
	case top.Has(FieldUnderline):
		out = out.WithUnderline(top.Underline)
	case bottom.Has(FieldUnderline):
		out = out.WithUnderline(bottom.Underline)
	}

	return out
}

// fgBlendBase picks the color an incoming foreground blends against
func fgBlendBase(bottom Cell) (Color, bool) {
	if !bottom.Has(FieldChar) {
		if bottom.Has(FieldBg) {
			return bottom.Bg, true
		}
		return Color{}, false
	}
	if bottom.Has(FieldFg) {
		return bottom.Fg, true
	}
	return Color{}, false
}
