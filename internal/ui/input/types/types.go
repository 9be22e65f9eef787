package types

// LineKind classifies a screen line for mouse handling
type LineKind int

const (
	LineOther LineKind = iota
	LineSelectAll
	LineRow
)

// Context is what input handling needs to know about the model
type Context interface {
	CurrentIndex() int
	RowCount() int
	HasSelection() bool
	// LineAt maps a screen line to what is drawn there; index is set for LineRow
	LineAt(y int) (kind LineKind, index int)
}
