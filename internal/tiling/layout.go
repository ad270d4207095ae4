package tiling

import (
	"fmt"
	"math"

	"github.com/1broseidon/spiralwm/internal/platform"
)

// BarMargin is the strip reserved at the top of the screen for an external
// status bar. Only the first spiral slot is pushed below it.
const BarMargin = 30

// Layout names accepted by New.
const (
	LayoutSpiral = "spiral"
	LayoutGrid   = "grid"
)

// Rect represents a window position and size
type Rect = platform.Rect

// Layout maps a window count to one rectangle per window, in order. It must
// be deterministic: equal inputs give equal outputs.
type Layout interface {
	Name() string
	Arrange(numWindows int) []Rect
}

// New builds the named layout for a width×height area.
func New(name string, width, height, gapSize int) (Layout, error) {
	switch name {
	case "", LayoutSpiral:
		return Spiral{Width: width, Height: height}, nil
	case LayoutGrid:
		return Grid{Width: width, Height: height, GapSize: gapSize}, nil
	default:
		return nil, fmt.Errorf("unsupported layout: %q", name)
	}
}

// Spiral halves the remaining area for every window but the last, walking
// the anchor down on even steps and right on odd steps.
//
// The walk is additive, not a true spiral: for five or more windows the
// anchor can leave the screen. Callers get exactly what the walk produces.
type Spiral struct {
	Width  int
	Height int
}

func (s Spiral) Name() string { return LayoutSpiral }

// spiralCursor is the running anchor and remaining size.
type spiralCursor struct {
	x, y, w, h float64
}

func (c spiralCursor) rect() Rect {
	return Rect{X: int(c.x), Y: int(c.y), Width: int(c.w), Height: int(c.h)}
}

// Arrange computes the spiral partition for numWindows windows.
func (s Spiral) Arrange(numWindows int) []Rect {
	if numWindows == 0 {
		return nil
	}

	cur := spiralCursor{w: float64(s.Width), h: float64(s.Height)}
	if numWindows == 1 {
		return []Rect{cur.rect()}
	}

	positions := make([]Rect, numWindows)
	for i := 0; i < numWindows; i++ {
		cur = s.step(cur, i, i == numWindows-1)
		positions[i] = cur.rect()
	}
	return positions
}

func (s Spiral) step(cur spiralCursor, i int, last bool) spiralCursor {
	// The last window keeps whatever is left.
	if !last {
		if i%2 == 1 {
			cur.h /= 2
		} else {
			cur.w /= 2
		}
	}

	switch i % 4 {
	case 0, 2:
		cur.y += cur.h
	case 1, 3:
		cur.x += cur.w
	}

	switch i {
	case 0:
		cur.y = BarMargin
	case 1:
		cur.x = float64(s.Width) - cur.w
	}
	return cur
}

// Grid arranges windows in ceil(sqrt(n)) columns with a uniform gap.
type Grid struct {
	Width   int
	Height  int
	GapSize int
}

func (g Grid) Name() string { return LayoutGrid }

// Arrange computes the grid cells for numWindows windows.
func (g Grid) Arrange(numWindows int) []Rect {
	return CalculatePositions(numWindows, Rect{Width: g.Width, Height: g.Height}, g.GapSize)
}

// CalculateGrid determines the optimal grid dimensions for the given number of windows
func CalculateGrid(numWindows int) (rows, cols int) {
	if numWindows == 0 {
		return 0, 0
	}

	cols = int(math.Ceil(math.Sqrt(float64(numWindows))))
	rows = int(math.Ceil(float64(numWindows) / float64(cols)))

	return rows, cols
}

// CalculatePositions computes window positions for a grid layout with gaps.
// Cells never shrink below 1×1.
func CalculatePositions(numWindows int, monitor Rect, gapSize int) []Rect {
	if numWindows == 0 {
		return nil
	}

	rows, cols := CalculateGrid(numWindows)

	// One gap before each column and one after the last.
	totalHorizontalGaps := (cols + 1) * gapSize
	totalVerticalGaps := (rows + 1) * gapSize

	cellWidth := max(1, (monitor.Width-totalHorizontalGaps)/cols)
	cellHeight := max(1, (monitor.Height-totalVerticalGaps)/rows)

	positions := make([]Rect, numWindows)

	for i := 0; i < numWindows; i++ {
		row := i / cols
		col := i % cols

		positions[i] = Rect{
			X:      monitor.X + gapSize + col*(cellWidth+gapSize),
			Y:      monitor.Y + gapSize + row*(cellHeight+gapSize),
			Width:  cellWidth,
			Height: cellHeight,
		}
	}

	return positions
}
