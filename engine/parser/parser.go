// Package parser converts command lines into Command structs.
// Intentionally dumb: exact prefixes, no normalization.
package parser

import (
	"strings"

	"github.com/nathoo/wasteland/types"
)

// Verbs produced by Parse.
const (
	VerbInteract  = "interact"
	VerbAttack    = "attack"
	VerbInventory = "inventory"
	VerbLook      = "look"
	VerbHelp      = "help"
	VerbExit      = "exit"
	VerbUnknown   = "unknown"
)

// ExitKeyword ends the game loop when typed on its own.
const ExitKeyword = "exit"

// Verbs that take the rest of the line as their target.
var targetVerbs = []string{VerbInteract, VerbAttack}

// Bare verbs must match the whole line.
var bareVerbs = map[string]bool{
	VerbInventory: true,
	VerbLook:      true,
	VerbHelp:      true,
	ExitKeyword:   true,
}

// Parse converts a raw input line into a Command. Matching is case-sensitive
// and the line is not trimmed: "look " is unknown, "interact  Sword" targets
// " Sword".
func Parse(input string) types.Command {
	for _, verb := range targetVerbs {
		if target, ok := strings.CutPrefix(input, verb+" "); ok {
			return types.Command{Verb: verb, Target: target}
		}
	}
	if bareVerbs[input] {
		return types.Command{Verb: input}
	}
	return types.Command{Verb: VerbUnknown}
}
