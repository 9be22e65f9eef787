package logic

// Navigator handles cursor movement and viewport management over a flat list
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	count          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// Cursor returns the current cursor index
func (n *Navigator) Cursor() int {
	return n.cursor
}

// ViewportOffset returns the index of the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of visible rows
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// Reset points the navigator at a new list, keeping the cursor in range
func (n *Navigator) Reset(count int) {
	n.count = count
	n.clamp()
}

// SetViewportHeight updates the number of visible rows
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.clamp()
}

// SetCursor moves the cursor to index and keeps it visible
func (n *Navigator) SetCursor(index int) {
	n.cursor = index
	n.clamp()
}

// Move applies a named movement: up, down, pageup, pagedown, home, end
func (n *Navigator) Move(direction string) {
	// Leave some overlap when paging
	page := n.viewportHeight - 1
	if page < 1 {
		page = 1
	}
	switch direction {
	case "up":
		n.cursor--
	case "down":
		n.cursor++
	case "pageup":
		n.cursor -= page
	case "pagedown":
		n.cursor += page
	case "home":
		n.cursor = 0
	case "end":
		n.cursor = n.count - 1
	}
	n.clamp()
}

// RowAt maps a visible line (0 = first visible row) to a row index
func (n *Navigator) RowAt(line int) (int, bool) {
	if line < 0 || line >= n.viewportHeight {
		return 0, false
	}
	index := n.viewportOffset + line
	if index >= n.count {
		return 0, false
	}
	return index, true
}

// clamp keeps the cursor in range and inside the viewport
func (n *Navigator) clamp() {
	if n.cursor >= n.count {
		n.cursor = n.count - 1
	}
	if n.cursor < 0 {
		n.cursor = 0
	}

	// If cursor is above viewport, scroll up
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}
	// If cursor is below viewport, scroll down
	if n.cursor >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.cursor - n.viewportHeight + 1
	}

	// Don't leave empty space at the bottom when the list fits
	maxOffset := n.count - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
