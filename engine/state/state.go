// Package state builds the mutable world from immutable definitions and
// provides the lookups the handlers share.
package state

import "github.com/nathoo/wasteland/types"

// Defs holds the immutable game definitions loaded from Lua.
type Defs struct {
	Game      types.GameDef
	Locations []types.Location
	NPCs      []types.NPC
	Items     []types.Item
	Quests    []types.Quest
	Replies   types.Replies
}

// NewWorld creates a fresh world from definitions. The returned world shares
// no slices with defs, so several worlds can be built from one Defs.
func NewWorld(defs *Defs) *types.World {
	npcs := make([]types.NPC, len(defs.NPCs))
	for i, n := range defs.NPCs {
		n.Dialogue = append([]string(nil), n.Dialogue...)
		npcs[i] = n
	}
	quests := make([]types.Quest, len(defs.Quests))
	for i, q := range defs.Quests {
		q.Completed = false
		quests[i] = q
	}
	return &types.World{
		Player: types.Player{
			Health:    defs.Game.PlayerHealth,
			Attack:    defs.Game.PlayerAttack,
			Inventory: []types.Item{},
		},
		Locations: append([]types.Location(nil), defs.Locations...),
		NPCs:      npcs,
		Items:     append([]types.Item(nil), defs.Items...),
		Quests:    quests,
		Current:   defs.Game.Start,
	}
}

// CurrentLocation returns the location the player is in.
func CurrentLocation(w *types.World) types.Location {
	return w.Locations[w.Current]
}

// FindNPC returns the index of the first NPC whose name equals name exactly.
func FindNPC(w *types.World, name string) (int, bool) {
	for i, n := range w.NPCs {
		if n.Name == name {
			return i, true
		}
	}
	return -1, false
}

// FindItem returns the index of the first world item whose name equals name exactly.
func FindItem(w *types.World, name string) (int, bool) {
	for i, it := range w.Items {
		if it.Name == name {
			return i, true
		}
	}
	return -1, false
}

// OpenQuests returns the indices of incomplete quests whose objective is objective.
func OpenQuests(w *types.World, objective string) []int {
	var result []int
	for i, q := range w.Quests {
		if !q.Completed && q.Objective == objective {
			result = append(result, i)
		}
	}
	return result
}

// CompletedQuests counts completed quests.
func CompletedQuests(w *types.World) int {
	n := 0
	for _, q := range w.Quests {
		if q.Completed {
			n++
		}
	}
	return n
}

// InConversation reports whether a dialogue menu is waiting for a choice.
func InConversation(w *types.World) bool {
	return w.Conversation != nil
}
