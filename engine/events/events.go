// Package events implements single-pass event handler dispatch.
// Event handlers produce additional effects but do not recurse.
package events

import (
	"fmt"

	"github.com/nathoo/wasteland/engine/effects"
	"github.com/nathoo/wasteland/engine/state"
	"github.com/nathoo/wasteland/types"
)

// Handler turns one event into follow-up effects.
type Handler func(ev types.Event, w *types.World) []types.Effect

var handlers = map[string]Handler{
	effects.EventItemTaken:      questCheck,
	effects.EventNPCDefeated:    npcDefeated,
	effects.EventPlayerDefeated: playerDefeated,
}

// Dispatch runs event handlers against the emitted events. Single pass,
// no recursion. Returns additional effects produced by matching handlers.
func Dispatch(events []types.Event, w *types.World) []types.Effect {
	var result []types.Effect

	for _, event := range events {
		handler, ok := handlers[event.Type]
		if !ok {
			continue
		}
		result = append(result, handler(event, w)...)
	}

	return result
}

// questCheck completes every open quest whose objective is the item just taken.
func questCheck(ev types.Event, w *types.World) []types.Effect {
	item, _ := ev.Data["item"].(string)
	var effs []types.Effect
	for _, i := range state.OpenQuests(w, item) {
		effs = append(effs, types.Effect{
			Type:   effects.CompleteQuest,
			Params: map[string]any{"quest": i},
		})
	}
	return effs
}

func npcDefeated(ev types.Event, _ *types.World) []types.Effect {
	name, _ := ev.Data["npc"].(string)
	return []types.Effect{say(fmt.Sprintf("%s has been defeated!", name))}
}

func playerDefeated(types.Event, *types.World) []types.Effect {
	return []types.Effect{say("You have been defeated!")}
}

func say(text string) types.Effect {
	return types.Effect{Type: effects.Say, Params: map[string]any{"text": text}}
}
