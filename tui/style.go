package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleChoicePrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("228"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Bold(true)

	styleListItem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleQuest = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarration lineKind = iota
	kindHeading
	kindListItem
	kindDialogue
	kindCombat
	kindQuest
	kindSystem
	kindError
	kindTrace
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "There's no '"),
		line == "Unknown command.":
		return kindError
	case strings.HasPrefix(line, "You completed the quest: "),
		strings.HasPrefix(line, "Quest: "):
		return kindQuest
	case strings.HasPrefix(line, "You attacked "),
		strings.Contains(line, " attacked you for "),
		strings.HasSuffix(line, " has been defeated!"),
		line == "You have been defeated!":
		return kindCombat
	case line == "You see:", line == "NPCs:", line == "Items:",
		line == "Inventory:", line == "List of commands:":
		return kindHeading
	case strings.HasPrefix(line, "- "):
		return kindListItem
	case strings.HasPrefix(line, "Choose a dialogue option"),
		isMenuOption(line):
		return kindDialogue
	default:
		return kindNarration
	}
}

// isMenuOption reports whether line looks like "N. text".
func isMenuOption(line string) bool {
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	return digits > 0 && strings.HasPrefix(line[digits:], ". ")
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeading:
		return styleHeading.Render(line)
	case kindListItem:
		return styleListItem.Render(line)
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindCombat:
		return styleCombat.Render(line)
	case kindQuest:
		return styleQuest.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarration.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
