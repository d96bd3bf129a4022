package editors

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atomicstack/tabdeck/internal/tabs"
)

const (
	levelCols = 32
	levelRows = 12

	tileEmpty = '.'
)

// brushes lists the tiles selectable with the number keys.
var brushes = []rune{'#', '~', '^', '@', '$'}

// LevelEditor is a small tile-grid painter. Arrow keys move the cursor,
// space paints with the current brush, x erases, 1-5 pick a brush and
// ctrl+s checkpoints the grid.
type LevelEditor struct {
	tabs.BaseContent
	grid    [levelRows][levelCols]rune
	saved   [levelRows][levelCols]rune
	row     int
	col     int
	brush   int
	visible int
	cursor  lipgloss.Style
}

// NewLevelEditor returns an empty level.
func NewLevelEditor() *LevelEditor {
	e := &LevelEditor{
		visible: levelRows,
		cursor:  lipgloss.NewStyle().Reverse(true),
	}
	for r := range e.grid {
		for c := range e.grid[r] {
			e.grid[r][c] = tileEmpty
		}
	}
	e.saved = e.grid
	return e
}

func (e *LevelEditor) Title() string { return "New Level" }

func (e *LevelEditor) IsDirty() bool { return e.grid != e.saved }

func (e *LevelEditor) Render(tabs.TabID) string {
	var b strings.Builder
	rows := e.visible
	if rows > levelRows {
		rows = levelRows
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < levelCols; c++ {
			cell := string(e.grid[r][c])
			if r == e.row && c == e.col {
				cell = e.cursor.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "brush %c  cursor %d,%d  painted %d", brushes[e.brush], e.col, e.row, e.Painted())
	return b.String()
}

// Tile returns the tile at column c, row r.
func (e *LevelEditor) Tile(c, r int) rune {
	if r < 0 || r >= levelRows || c < 0 || c >= levelCols {
		return 0
	}
	return e.grid[r][c]
}

// Painted counts non-empty tiles.
func (e *LevelEditor) Painted() int {
	n := 0
	for r := range e.grid {
		for c := range e.grid[r] {
			if e.grid[r][c] != tileEmpty {
				n++
			}
		}
	}
	return n
}

func (e *LevelEditor) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch s := key.String(); s {
	case "up", "k":
		e.row = clamp(e.row-1, 0, levelRows-1)
	case "down", "j":
		e.row = clamp(e.row+1, 0, levelRows-1)
	case "left", "h":
		e.col = clamp(e.col-1, 0, levelCols-1)
	case "right", "l":
		e.col = clamp(e.col+1, 0, levelCols-1)
	case "space":
		e.grid[e.row][e.col] = brushes[e.brush]
	case "x", "delete":
		e.grid[e.row][e.col] = tileEmpty
	case "ctrl+s":
		e.saved = e.grid
	default:
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(brushes) {
			e.brush = int(s[0] - '1')
		}
	}
	return nil
}

// SetSize limits how many grid rows are drawn; one row is kept for the
// status line.
func (e *LevelEditor) SetSize(_, height int) {
	if height > 1 {
		e.visible = height - 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
