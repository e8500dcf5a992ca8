package engine

import (
	"fmt"

	"github.com/nathoo/wasteland/types"
)

// StateLines renders a debug dump of the world.
func (e *Engine) StateLines() []string {
	w := e.World
	game := e.Defs.Game
	lines := []string{
		fmt.Sprintf("World: %s v%s", game.Title, game.Version),
		fmt.Sprintf("Turn: %d", w.TurnCount),
		fmt.Sprintf("Location: %d (%s)", w.Current, w.Locations[w.Current].Description),
		fmt.Sprintf("Health: %d Attack: %d", w.Player.Health, w.Player.Attack),
	}

	names := make([]string, len(w.Player.Inventory))
	for i, item := range w.Player.Inventory {
		names[i] = item.Name
	}
	lines = append(lines, fmt.Sprintf("Inventory: %v", names))

	for _, npc := range w.NPCs {
		lines = append(lines, fmt.Sprintf("NPC %s: health %d, attack %d", npc.Name, npc.Health, npc.Attack))
	}
	for _, q := range w.Quests {
		lines = append(lines, fmt.Sprintf("Quest %s: completed=%t", q.Name, q.Completed))
	}
	if w.Conversation != nil {
		lines = append(lines, fmt.Sprintf("Conversation: %s", w.Conversation.Target))
	}
	return lines
}

// TraceLines renders the effects and events of one turn.
func TraceLines(result types.Result) []string {
	var lines []string
	if len(result.Effects) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Effects: %d", len(result.Effects)))
		for _, e := range result.Effects {
			lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Params))
		}
	}
	if len(result.Events) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			lines = append(lines, fmt.Sprintf("[trace]   %s", e.Type))
		}
	}
	return lines
}
