package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"memmatch/internal/board"
	"memmatch/internal/game"
)

func (m *Model) View() string {
	var body string
	switch m.screen {
	case game.ScreenGame:
		body = m.gameView()
	case game.ScreenWin:
		body = m.winView()
	default:
		body = m.titleView()
	}
	return body + "\n\n" + m.help.View(m.keys.For(m.screen)) + "\n"
}

func (m *Model) titleView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MEMMATCH"))
	b.WriteString("\n\nFind every pair of matching tiles in as few moves as you can.\n\n")

	selected := m.game.Selected()
	var row []string
	for _, d := range board.Presets() {
		label := d.Label
		if d.Key == selected.Key {
			label = selectedStyle.Render("▸ " + label)
		} else {
			label = mutedStyle.Render("  " + label)
		}
		row = append(row, label)
	}
	b.WriteString(strings.Join(row, "   "))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d×%d grid, %d pairs", selected.Rows, selected.Cols, selected.PairCount)))
	b.WriteString("\n\n")
	b.WriteString("Sound: " + onOff(m.soundOn()))

	if m.err != nil {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.err.Error()))
	}
	return b.String()
}

func (m *Model) gameView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MEMMATCH · " + m.game.State.Difficulty.Label))
	b.WriteString("\n")
	b.WriteString(m.statsLine())
	b.WriteString("\n")
	b.WriteString(m.boardView())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
	}
	return b.String()
}

func (m *Model) statsLine() string {
	return statsStyle.Render(fmt.Sprintf("Moves: %d | Pairs: %d/%d | Time: %s | Sound: %s",
		m.moves, m.matched, m.total, clock(m.elapsed), onOff(m.soundOn())))
}

func (m *Model) boardView() string {
	if m.cols == 0 {
		return ""
	}
	var rows []string
	for start := 0; start < len(m.tiles); start += m.cols {
		end := min(start+m.cols, len(m.tiles))
		var cells []string
		for _, t := range m.tiles[start:end] {
			cells = append(cells, m.tileView(t))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) tileView(t *board.Tile) string {
	var content string
	style := tileStyle
	switch t.Face() {
	case board.FaceUp:
		content = string(t.Symbol)
		style = faceUpStyle
	case board.Matched:
		content = string(t.Symbol)
		style = matchedStyle
	default:
		content = "··"
	}
	if t.ID == m.cursor {
		content = cursorStyle.Render(content)
	}
	return style.Render(content)
}

func (m *Model) winView() string {
	s := m.summary
	if s == nil {
		return m.gameView()
	}

	var b strings.Builder
	b.WriteString(winStyle.Render("You won!"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Difficulty: %s\n", s.Difficulty.Label)
	fmt.Fprintf(&b, "Moves:      %d\n", s.Moves)
	fmt.Fprintf(&b, "Time:       %s\n", clock(s.ElapsedSeconds))
	fmt.Fprintf(&b, "Pairs:      %d\n\n", s.TotalPairs)
	b.WriteString(statsStyle.Render(s.Rating.Glyphs()))
	b.WriteString("  " + s.Rating.Message + "\n\n")

	switch {
	case s.Best == nil:
		b.WriteString("First win at this difficulty!")
	case s.NewBest:
		fmt.Fprintf(&b, "New best! Previous: %d moves in %s", s.Best.Moves, clock(s.Best.Seconds))
	default:
		fmt.Fprintf(&b, "Best: %d moves in %s", s.Best.Moves, clock(s.Best.Seconds))
	}
	fmt.Fprintf(&b, "\nWins at this difficulty: %d", s.Attempts)

	if len(s.Top) > 1 {
		b.WriteString("\n\nTop results:")
		for i, e := range s.Top {
			fmt.Fprintf(&b, "\n  %d. %d moves in %s", i+1, e.Moves, clock(e.Seconds))
		}
	}

	return panelStyle.Render(b.String())
}

func clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
