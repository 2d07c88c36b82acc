package tui

import (
	"fmt"

	"github.com/arcadelab/ferretbox/internal/config"
	"github.com/arcadelab/ferretbox/internal/core"
	"github.com/arcadelab/ferretbox/internal/game"
)

// Board layout constants.
const (
	boxCellW = 5 // Width of one box including its border
	boxCellH = 3 // Height of one box including its border
	boxGap   = 1 // Columns between adjacent boxes

	titleRow  = 1
	statusRow = 3
	boardRow  = 5
)

const (
	ferretRune = '@'
	emptyRune  = '·'
)

// panelButton is one clickable control-panel button.
type panelButton struct {
	label   string
	rect    core.Rect
	event   game.Event
	enabled bool
}

// viewLayout holds the screen regions computed for the current state:
// one rect per box plus the control panel buttons. The model keeps the
// latest layout for mouse hit-testing.
type viewLayout struct {
	boxRects []core.Rect
	buttons  []panelButton
	panelRow int
	banner   int
}

// buildLayout computes box and button positions for the given state and
// screen width. Buttons that would push past a configured limit are
// disabled here so the game core never sees an upper clamp; the lower
// clamps and the always-enabled undo stay with the core.
func buildLayout(st game.State, limits config.LimitsConfig, screenW int) viewLayout {
	n := st.Boxes()

	lay := viewLayout{
		boxRects: make([]core.Rect, n),
		panelRow: boardRow + boxCellH + 1,
	}
	lay.banner = lay.panelRow + 2

	total := n*boxCellW + (n-1)*boxGap
	left := core.Max((screenW-total)/2, 0)
	for i := 0; i < n; i++ {
		x := left + i*(boxCellW+boxGap)
		lay.boxRects[i] = core.NewRect(x, boardRow, boxCellW, boxCellH)
	}

	specs := []struct {
		label   string
		event   game.Event
		enabled bool
	}{
		{"[-box]", game.Event{Kind: game.EventRemoveBox}, n > 1},
		{"[+box]", game.Event{Kind: game.EventAddBox}, n < limits.MaxBoxes},
		{"[-spd]", game.Event{Kind: game.EventSpeedDown}, st.Speed > 1},
		{"[+spd]", game.Event{Kind: game.EventSpeedUp}, st.Speed < limits.MaxSpeed},
		{"[undo]", game.Event{Kind: game.EventUndo}, true}, // always enabled, no-op on empty history
		{"[reset]", game.Event{Kind: game.EventReset}, true},
	}

	panelW := 0
	for _, s := range specs {
		panelW += len(s.label)
	}
	panelW += (len(specs) - 1) * 2

	x := core.Max((screenW-panelW)/2, 0)
	lay.buttons = make([]panelButton, 0, len(specs))
	for _, s := range specs {
		lay.buttons = append(lay.buttons, panelButton{
			label:   s.label,
			rect:    core.NewRect(x, lay.panelRow, len(s.label), 1),
			event:   s.event,
			enabled: s.enabled,
		})
		x += len(s.label) + 2
	}

	return lay
}

// drawGame renders the whole play screen into the buffer.
func drawGame(dst *core.Screen, st game.State, cursor int, lay viewLayout, best int) {
	dst.Clear()

	dst.DrawTextCentered(titleRow, "W H A C K - A - F E R R E T")

	status := fmt.Sprintf("Boxes %d   Speed %d   Moves %d", st.Boxes(), st.Speed, st.Moves())
	if best > 0 {
		status += fmt.Sprintf("   Best %d", best)
	}
	dst.DrawTextCentered(statusRow, status)

	for i, r := range lay.boxRects {
		outline := core.ColorGray
		if i == cursor {
			outline = core.ColorBrightYellow
		}
		dst.DrawBoxColored(r, outline)

		cx, cy := r.Center()
		if st.Board.Occupied(i) {
			dst.SetColored(cx, cy, ferretRune, core.ColorOrange)
		} else {
			dst.SetColored(cx, cy, emptyRune, core.ColorGray)
		}
	}

	for _, b := range lay.buttons {
		color := core.ColorDefault
		if !b.enabled {
			color = core.ColorGray
		}
		dst.DrawTextColored(b.rect.X, b.rect.Y, b.label, color)
	}

	if st.Cleared() && st.Moves() > 0 {
		banner := fmt.Sprintf("Cleared in %d smashes! Press r for a new round.", st.Moves())
		dst.DrawTextCentered(lay.banner, banner)
	}
}
