package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/wasteland/engine/state"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled defs for consistency.
func validate(defs *state.Defs) error {
	ve := check(defs)

	// Print warnings to stderr but don't fail.
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// check collects every problem with defs without reporting them.
func check(defs *state.Defs) *ValidationError {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}
	if defs.Game.PlayerHealth <= 0 {
		ve.Errors = append(ve.Errors, "Game.player.health must be positive")
	}

	if len(defs.Locations) == 0 {
		ve.Errors = append(ve.Errors, "at least one Location is required")
	} else if defs.Game.Start < 0 || defs.Game.Start >= len(defs.Locations) {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"Game.start %d is out of range (1..%d)", defs.Game.Start+1, len(defs.Locations)))
	}

	items := map[string]bool{}
	for i, item := range defs.Items {
		if item.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("Item #%d has an empty name", i+1))
		}
		items[item.Name] = true
	}

	for i, npc := range defs.NPCs {
		if npc.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("NPC #%d has an empty name", i+1))
		}
	}

	for i, q := range defs.Quests {
		if q.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("Quest #%d has an empty name", i+1))
		}
		if q.Objective == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("Quest %q has no objective", q.Name))
		} else if !items[q.Objective] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"Quest %q objective %q is not a defined item", q.Name, q.Objective))
		}
	}

	return ve
}
