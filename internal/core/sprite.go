package core

// Sprite is a drawable bounding box. Frontends that draw shapes instead of
// characters use Box and Color; character frontends also use Glyph.
type Sprite struct {
	Box   Rect
	Color Color
	Glyph rune
}
