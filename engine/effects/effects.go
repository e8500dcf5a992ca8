// Package effects implements centralized world mutation via the Apply function.
// Every effect type is one atomic operation. No logic in effects.
package effects

import (
	"fmt"

	"github.com/nathoo/wasteland/types"
)

// Effect types understood by Apply.
const (
	Say               = "say"
	GiveItem          = "give_item"
	Damage            = "damage"
	CompleteQuest     = "complete_quest"
	StartConversation = "start_conversation"
	EndConversation   = "end_conversation"
)

// Event types emitted by Apply.
const (
	EventItemTaken           = "item_taken"
	EventEntityDamaged       = "entity_damaged"
	EventNPCDefeated         = "npc_defeated"
	EventPlayerDefeated      = "player_defeated"
	EventQuestCompleted      = "quest_completed"
	EventConversationStarted = "conversation_started"
	EventConversationEnded   = "conversation_ended"
)

// Damage targets. An NPC target also carries the NPC index in "npc".
const (
	TargetPlayer = "player"
	TargetNPC    = "npc"
)

// Apply applies a list of effects to the world, mutating it.
// Returns events emitted and output text collected.
func Apply(w *types.World, effects []types.Effect) ([]types.Event, []string) {
	var events []types.Event
	var output []string

	for _, eff := range effects {
		switch eff.Type {
		case Say:
			text, _ := eff.Params["text"].(string)
			output = append(output, text)

		case GiveItem:
			idx, ok := index(eff.Params, "item", len(w.Items))
			if !ok {
				continue
			}
			// The world keeps its copy; the player gets another one.
			item := w.Items[idx]
			w.Player.Inventory = append(w.Player.Inventory, item)
			events = append(events, types.Event{
				Type: EventItemTaken,
				Data: map[string]any{"item": item.Name},
			})

		case Damage:
			amount := toInt(eff.Params["amount"])
			target, _ := eff.Params["target"].(string)
			if target == TargetPlayer {
				w.Player.Health -= amount
				remaining := w.Player.Health
				events = append(events, types.Event{
					Type: EventEntityDamaged,
					Data: map[string]any{"target": TargetPlayer, "amount": amount, "remaining": remaining},
				})
				if remaining <= 0 {
					w.Defeated = true
					w.Conversation = nil
					events = append(events, types.Event{
						Type: EventPlayerDefeated,
						Data: map[string]any{},
					})
				}
				continue
			}
			idx, ok := index(eff.Params, "npc", len(w.NPCs))
			if target != TargetNPC || !ok {
				continue
			}
			npc := &w.NPCs[idx]
			npc.Health -= amount
			events = append(events, types.Event{
				Type: EventEntityDamaged,
				Data: map[string]any{"target": npc.Name, "amount": amount, "remaining": npc.Health},
			})
			// Defeated NPCs stay in the world; only the event marks it.
			if npc.Health <= 0 {
				events = append(events, types.Event{
					Type: EventNPCDefeated,
					Data: map[string]any{"npc": npc.Name},
				})
			}

		case CompleteQuest:
			idx, ok := index(eff.Params, "quest", len(w.Quests))
			if !ok || w.Quests[idx].Completed {
				continue
			}
			w.Quests[idx].Completed = true
			output = append(output, fmt.Sprintf("You completed the quest: %s!", w.Quests[idx].Name))
			events = append(events, types.Event{
				Type: EventQuestCompleted,
				Data: map[string]any{"quest": w.Quests[idx].Name},
			})

		case StartConversation:
			idx, ok := index(eff.Params, "npc", len(w.NPCs))
			if !ok {
				continue
			}
			target, _ := eff.Params["target"].(string)
			w.Conversation = &types.Conversation{NPC: idx, Target: target}
			events = append(events, types.Event{
				Type: EventConversationStarted,
				Data: map[string]any{"npc": w.NPCs[idx].Name},
			})

		case EndConversation:
			if w.Conversation == nil {
				continue
			}
			name := w.NPCs[w.Conversation.NPC].Name
			w.Conversation = nil
			events = append(events, types.Event{
				Type: EventConversationEnded,
				Data: map[string]any{"npc": name},
			})

		default:
			// Unknown effect type: ignore silently.
		}
	}

	return events, output
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}

// index reads an integer param and checks it against a list length.
func index(params map[string]any, key string, n int) (int, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	i := toInt(v)
	return i, i >= 0 && i < n
}
