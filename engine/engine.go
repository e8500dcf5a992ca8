// Package engine provides the Step() orchestrator that wires together
// parsing, resolution, effects, and events into a single turn.
package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nathoo/wasteland/engine/dialogue"
	"github.com/nathoo/wasteland/engine/effects"
	"github.com/nathoo/wasteland/engine/events"
	"github.com/nathoo/wasteland/engine/parser"
	"github.com/nathoo/wasteland/engine/resolve"
	"github.com/nathoo/wasteland/engine/state"
	"github.com/nathoo/wasteland/types"
)

// helpText is the static command reference.
var helpText = []string{
	"List of commands:",
	"interact [target] - Interact with an NPC or item.",
	"attack [target] - Attack an NPC.",
	"inventory - Display the contents of your inventory.",
	"look - See what is around you.",
	"help - Show this help message.",
	"exit - Quit the game.",
}

// Options tune an Engine.
type Options struct {
	// NPCAttackFromDamage makes NPCs retaliate with their constructor damage.
	// Off by default: the attack value is never assigned and stays 0.
	NPCAttackFromDamage bool

	Logger *slog.Logger
}

// Engine holds the game definitions and the world they were built into.
type Engine struct {
	Defs  *state.Defs
	World *types.World
	log   *slog.Logger
}

// New creates a new engine from definitions.
func New(defs *state.Defs, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w := state.NewWorld(defs)
	if opts.NPCAttackFromDamage {
		for i := range w.NPCs {
			w.NPCs[i].Attack = w.NPCs[i].Damage
		}
	}
	log.Info("world created",
		"locations", len(w.Locations), "npcs", len(w.NPCs),
		"items", len(w.Items), "quests", len(w.Quests),
		"npc_attack_from_damage", opts.NPCAttackFromDamage)
	return &Engine{Defs: defs, World: w, log: log}
}

// Describe returns the description of the player's current location.
func (e *Engine) Describe() string {
	return state.CurrentLocation(e.World).Description
}

// InConversation reports whether the next input is a dialogue choice.
func (e *Engine) InConversation() bool {
	return state.InConversation(e.World)
}

// Step processes one line of player input and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	// 0. Defeat is final.
	if e.World.Defeated {
		result.Output = append(result.Output, "You have been defeated.")
		result.Quit = true
		return result
	}

	// 1. An open conversation takes the line as a dialogue choice.
	if e.InConversation() {
		// Blank lines are skipped while waiting for a number.
		if strings.TrimSpace(input) == "" {
			return result
		}
		e.log.Debug("dialogue choice", "input", input, "turn", e.World.TurnCount)
		effs := e.converse(input, &result)
		e.apply(&result, effs)
		e.World.TurnCount++
		return result
	}

	// 2. Exit is checked before dispatch.
	if input == parser.ExitKeyword {
		result.Output = append(result.Output, e.Defs.Game.Farewell)
		result.Quit = true
		return result
	}

	// 3. Parse and dispatch.
	cmd := parser.Parse(input)
	e.log.Debug("command", "verb", cmd.Verb, "target", cmd.Target, "turn", e.World.TurnCount)

	switch cmd.Verb {
	case parser.VerbInteract:
		e.apply(&result, e.interact(cmd.Target, &result))
	case parser.VerbAttack:
		e.attack(cmd.Target, &result)
	case parser.VerbInventory:
		result.Output = append(result.Output, e.inventory()...)
	case parser.VerbLook:
		result.Output = append(result.Output, e.look()...)
	case parser.VerbHelp:
		result.Output = append(result.Output, helpText...)
	default:
		result.Output = append(result.Output, "Unknown command.")
	}

	e.World.TurnCount++
	result.Quit = e.World.Defeated
	return result
}

// apply runs effects, dispatches the events they emit (single pass) and
// applies the follow-up effects, collecting everything into result.
func (e *Engine) apply(result *types.Result, effs []types.Effect) {
	if len(effs) == 0 {
		return
	}
	evts, output := effects.Apply(e.World, effs)
	result.Effects = append(result.Effects, effs...)
	result.Events = append(result.Events, evts...)
	result.Output = append(result.Output, output...)

	// Event effects are applied but their events are not re-dispatched.
	eventEffs := events.Dispatch(evts, e.World)
	if len(eventEffs) > 0 {
		evts2, output2 := effects.Apply(e.World, eventEffs)
		result.Effects = append(result.Effects, eventEffs...)
		result.Events = append(result.Events, evts2...)
		result.Output = append(result.Output, output2...)
		evts = append(evts, evts2...)
	}

	for _, ev := range evts {
		switch ev.Type {
		case effects.EventQuestCompleted:
			e.log.Info("quest completed", "quest", ev.Data["quest"], "turn", e.World.TurnCount)
		case effects.EventNPCDefeated:
			e.log.Info("npc defeated", "npc", ev.Data["npc"], "turn", e.World.TurnCount)
		case effects.EventPlayerDefeated:
			e.log.Info("player defeated", "turn", e.World.TurnCount)
		}
	}
}

// interact greets an NPC and opens its conversation, or picks up an item.
func (e *Engine) interact(target string, result *types.Result) []types.Effect {
	res, err := resolve.Target(e.World, target)
	if err != nil {
		result.Output = append(result.Output, err.Error())
		return nil
	}

	if res.Kind == resolve.KindNPC {
		npc := e.World.NPCs[res.Index]
		result.Output = append(result.Output, npc.Greeting)
		result.Output = append(result.Output, dialogue.Menu(npc)...)
		return []types.Effect{
			{Type: effects.StartConversation, Params: map[string]any{"npc": res.Index, "target": target}},
		}
	}

	item := e.World.Items[res.Index]
	result.Output = append(result.Output, fmt.Sprintf("You picked up a %s.", item.Name))
	return []types.Effect{
		{Type: effects.GiveItem, Params: map[string]any{"item": res.Index}},
	}
}

// converse handles one dialogue choice: a valid choice gets a reply and the
// menu again, anything else ends the conversation.
func (e *Engine) converse(input string, result *types.Result) []types.Effect {
	conv := e.World.Conversation
	npc := e.World.NPCs[conv.NPC]

	choice, ok := dialogue.ParseChoice(input, npc)
	if !ok {
		return e.endConversation(npc, conv.Target)
	}
	result.Output = append(result.Output, dialogue.Reply(npc, choice, e.Defs.Replies))
	result.Output = append(result.Output, dialogue.Menu(npc)...)
	return nil
}

// endConversation closes the dialogue. Quest givers then mention open
// quests whose objective equals the name the player interacted with;
// objectives are item names, so with the stock world this never matches.
func (e *Engine) endConversation(npc types.NPC, target string) []types.Effect {
	effs := []types.Effect{{Type: effects.EndConversation}}
	if !npc.QuestGiver {
		return effs
	}
	for _, i := range state.OpenQuests(e.World, target) {
		q := e.World.Quests[i]
		effs = append(effs, say("Quest: "+q.Name), say(q.Description))
	}
	return effs
}

func (e *Engine) look() []string {
	output := []string{"You see:", "NPCs:"}
	for _, npc := range e.World.NPCs {
		output = append(output, "- "+npc.Name)
	}
	output = append(output, "Items:")
	for _, item := range e.World.Items {
		output = append(output, "- "+item.Name)
	}
	return output
}

func (e *Engine) inventory() []string {
	inv := e.World.Player.Inventory
	if len(inv) == 0 {
		return []string{"Your inventory is empty."}
	}
	output := []string{"Inventory:"}
	for _, item := range inv {
		output = append(output, fmt.Sprintf("- %s (Value: %d)", item.Name, item.Value))
	}
	return output
}

func say(text string) types.Effect {
	return types.Effect{Type: effects.Say, Params: map[string]any{"text": text}}
}
