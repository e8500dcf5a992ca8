package resolve

import (
	"errors"
	"testing"

	"github.com/nathoo/wasteland/engine/state"
	"github.com/nathoo/wasteland/types"
)

func testWorld() *types.World {
	return state.NewWorld(&state.Defs{
		Locations: []types.Location{{Description: "A dark room."}},
		NPCs: []types.NPC{
			{Name: "John"},
			{Name: "Jane"},
			{Name: "Sword"}, // an NPC shadowing an item name
			{Name: "John", Dialogue: []string{"Hi"}},
		},
		Items: []types.Item{
			{Name: "Sword", Value: 100},
			{Name: "Shield", Value: 50},
		},
	})
}

func TestTarget(t *testing.T) {
	w := testWorld()
	tests := []struct {
		name  string
		want  Result
		found bool
	}{
		{"John", Result{Kind: KindNPC, Index: 0}, true},
		{"Jane", Result{Kind: KindNPC, Index: 1}, true},
		{"Sword", Result{Kind: KindNPC, Index: 2}, true}, // NPCs are searched first
		{"Shield", Result{Kind: KindItem, Index: 1}, true},
		{"shield", Result{}, false},
		{"Shie", Result{}, false},
		{"", Result{}, false},
		{" John", Result{}, false},
	}
	for _, tt := range tests {
		got, err := Target(w, tt.name)
		if tt.found {
			if err != nil {
				t.Errorf("Target(%q): unexpected error %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Target(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
			continue
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Target(%q): expected NotFoundError, got %v", tt.name, err)
		}
	}
}

func TestNPC_IgnoresItems(t *testing.T) {
	w := testWorld()

	if _, err := NPC(w, "Shield"); err == nil {
		t.Error("expected error resolving an item as an NPC")
	}
	idx, err := NPC(w, "John")
	if err != nil || idx != 0 {
		t.Errorf("expected John at 0, got %d (%v)", idx, err)
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{Name: "Dragon"}
	if err.Error() != "There's no 'Dragon' here." {
		t.Errorf("unexpected message %q", err.Error())
	}
}
