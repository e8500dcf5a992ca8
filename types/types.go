// Package types defines the shared data structures for the Wasteland game.
// This package contains only type definitions: no logic, no methods.
package types

// Command is the parsed representation of one input line.
type Command struct {
	Verb   string
	Target string // remainder of the line after "interact " / "attack "
}

// Effect is a single atomic world mutation instruction.
type Effect struct {
	Type   string
	Params map[string]any
}

// Event is emitted after effects are applied.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single game step.
type Result struct {
	Effects []Effect
	Events  []Event
	Output  []string
	Quit    bool // the session is over (exit or player defeat)
}

// Item is something the player can pick up.
type Item struct {
	Name  string
	Value int
}

// Location is a place the player can be in.
type Location struct {
	Description string
}

// NPC is a non-player character.
type NPC struct {
	Name       string
	Health     int
	Damage     int // constructor damage; never read by combat unless configured
	Attack     int // damage dealt back to the player when attacked
	Greeting   string
	Dialogue   []string
	QuestGiver bool
}

// Quest is a fetch quest completed by picking up its objective item.
type Quest struct {
	Name        string
	Description string
	Objective   string // item name
	Completed   bool
}

// Player holds the player's runtime state.
type Player struct {
	Health    int
	Attack    int
	Inventory []Item
}

// Conversation tracks an NPC dialogue waiting for the player's choice.
type Conversation struct {
	NPC    int    // index into World.NPCs
	Target string // the name the player interacted with
}

// World is the complete mutable game state.
type World struct {
	Player       Player
	Locations    []Location
	NPCs         []NPC
	Items        []Item
	Quests       []Quest
	Current      int // index into Locations
	Conversation *Conversation
	Defeated     bool
	TurnCount    int
}

// Replies holds the canned NPC answers, selected by dialogue option position.
type Replies struct {
	Lines    []string
	Fallback string
}

// GameDef holds game metadata from Lua.
type GameDef struct {
	Title        string
	Version      string
	Intro        string
	Farewell     string
	Start        int // starting location index (0-based)
	PlayerHealth int
	PlayerAttack int
}
