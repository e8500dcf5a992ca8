// Package resolve maps the target of a command to an NPC or item in the world.
package resolve

import (
	"fmt"

	"github.com/nathoo/wasteland/engine/state"
	"github.com/nathoo/wasteland/types"
)

// Kind says which world list a resolved target lives in.
type Kind int

const (
	KindNPC Kind = iota
	KindItem
)

// Result holds a resolved target.
type Result struct {
	Kind  Kind
	Index int
}

// NotFoundError indicates no NPC or item matched a name. Its message is the
// line shown to the player.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("There's no '%s' here.", e.Name)
}

// Target resolves name against NPCs first, then items. Names must match
// exactly and the first declared match wins.
func Target(w *types.World, name string) (Result, error) {
	if i, ok := state.FindNPC(w, name); ok {
		return Result{Kind: KindNPC, Index: i}, nil
	}
	if i, ok := state.FindItem(w, name); ok {
		return Result{Kind: KindItem, Index: i}, nil
	}
	return Result{}, &NotFoundError{Name: name}
}

// NPC resolves name against NPCs only.
func NPC(w *types.World, name string) (int, error) {
	if i, ok := state.FindNPC(w, name); ok {
		return i, nil
	}
	return -1, &NotFoundError{Name: name}
}
