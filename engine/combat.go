package engine

import (
	"fmt"

	"github.com/nathoo/wasteland/engine/effects"
	"github.com/nathoo/wasteland/engine/resolve"
	"github.com/nathoo/wasteland/types"
)

// attack runs one exchange: the player's strike, then the NPC's answer if
// it is still standing. Output and effects are collected into result.
func (e *Engine) attack(target string, result *types.Result) {
	idx, err := resolve.NPC(e.World, target)
	if err != nil {
		result.Output = append(result.Output, err.Error())
		return
	}

	effs, output := e.playerStrike(idx)
	result.Output = append(result.Output, output...)
	e.apply(result, effs)

	// A defeated NPC does not hit back.
	if e.World.NPCs[idx].Health <= 0 {
		return
	}

	effs, output = e.npcStrike(idx)
	result.Output = append(result.Output, output...)
	e.apply(result, effs)
}

// playerStrike produces the effects of the player hitting NPC idx.
func (e *Engine) playerStrike(idx int) ([]types.Effect, []string) {
	npc := e.World.NPCs[idx]
	damage := e.World.Player.Attack
	effs := []types.Effect{
		{Type: effects.Damage, Params: map[string]any{"target": effects.TargetNPC, "npc": idx, "amount": damage}},
	}
	return effs, []string{fmt.Sprintf("You attacked %s for %d damage.", npc.Name, damage)}
}

// npcStrike produces the effects of NPC idx hitting the player back.
func (e *Engine) npcStrike(idx int) ([]types.Effect, []string) {
	npc := e.World.NPCs[idx]
	effs := []types.Effect{
		{Type: effects.Damage, Params: map[string]any{"target": effects.TargetPlayer, "amount": npc.Attack}},
	}
	return effs, []string{fmt.Sprintf("%s attacked you for %d damage.", npc.Name, npc.Attack)}
}
