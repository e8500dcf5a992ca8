package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/wasteland/engine/state"
)

// renderStatusBar produces a full-width inverted status line showing
// location, health, quest progress, inventory, and turn count.
func (m Model) renderStatusBar() string {
	w := m.engine.World

	left := fmt.Sprintf(" Location %d | HP: %d | Quests: %d/%d",
		w.Current+1, w.Player.Health, state.CompletedQuests(w), len(w.Quests))
	if w.Conversation != nil {
		left += " | Talking: " + w.Conversation.Target
	}
	right := fmt.Sprintf("T:%d ", w.TurnCount)

	// Show inventory items if they fit, otherwise just count.
	if n := len(w.Player.Inventory); n > 0 {
		names := make([]string, n)
		for i, item := range w.Player.Inventory {
			names[i] = item.Name
		}
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(names, ", "), w.TurnCount)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", n, w.TurnCount)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
