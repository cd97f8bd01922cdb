// Package cursor tracks the selected row and scroll offset of a list pane.
package cursor

import "github.com/llehouerou/comrad/internal/keymap"

// Cursor is a row selection over a list whose length and viewport height
// are supplied on every call. The zero value has no scroll margin.
type Cursor struct {
	pos    int
	offset int
	margin int
}

// New returns a cursor that keeps margin rows visible around the selection.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos is the selected row.
func (c Cursor) Pos() int { return c.pos }

// Offset is the first visible row.
func (c Cursor) Offset() int { return c.offset }

// Move shifts the selection by delta rows. No-op on an empty list.
func (c *Cursor) Move(delta, n, height int) {
	c.Jump(c.pos+delta, n, height)
}

// Jump selects row pos, clamped to the list. No-op on an empty list.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		return
	}
	c.pos = min(max(pos, 0), n-1)
	c.scroll(n, height)
}

// Reset selects the first row.
func (c *Cursor) Reset() {
	c.pos, c.offset = 0, 0
}

// Clamp pulls the selection back inside a list that shrank to n rows and
// reports whether it moved.
func (c *Cursor) Clamp(n int) bool {
	if n == 0 {
		moved := c.pos != 0 || c.offset != 0
		c.Reset()
		return moved
	}
	if c.pos < n {
		return false
	}
	c.pos = n - 1
	c.offset = min(c.offset, c.pos)
	return true
}

// Window returns the visible rows as the half-open range [start, end).
func (c Cursor) Window(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, n)
}

// Apply runs a navigation action and reports whether it was one.
func (c *Cursor) Apply(action keymap.Action, n, height int) bool {
	switch action {
	case keymap.ActionMoveDown:
		c.Move(1, n, height)
	case keymap.ActionMoveUp:
		c.Move(-1, n, height)
	case keymap.ActionJumpStart:
		c.Jump(0, n, height)
	case keymap.ActionJumpEnd:
		c.Jump(n-1, n, height)
	default:
		return false
	}
	return true
}

func (c *Cursor) scroll(n, height int) {
	if height <= 0 {
		return
	}
	// margin can not exceed half the viewport or the cursor would never settle
	m := min(c.margin, (height-1)/2)
	if c.pos < c.offset+m {
		c.offset = c.pos - m
	}
	if c.pos > c.offset+height-1-m {
		c.offset = c.pos - height + 1 + m
	}
	c.offset = min(max(c.offset, 0), max(n-height, 0))
}
