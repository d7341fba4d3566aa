package layout

// Cursor is the running vertical offset used while placing content. It only
// moves down: each emitted block advances it by the block's measured height
// plus template spacing, and nothing ever rewinds it within one pass.
type Cursor struct {
	y float64
}

// NewCursor starts a cursor at the template's top margin.
func NewCursor(top float64) Cursor {
	return Cursor{y: top}
}

// Y returns the current offset.
func (c *Cursor) Y() float64 {
	return c.y
}

// Advance moves the cursor down by dy. Negative deltas are ignored; the
// cursor is monotonic by contract.
func (c *Cursor) Advance(dy float64) {
	if dy <= 0 {
		return
	}
	c.y += dy
}

// AdvanceTo moves the cursor down to at least y. Used for fixed-height
// blocks such as the title banner that are positioned from the page top.
func (c *Cursor) AdvanceTo(y float64) {
	if y > c.y {
		c.y = y
	}
}
