package loader

import (
	"fmt"

	"github.com/nathoo/wasteland/engine/state"
	"github.com/nathoo/wasteland/types"
	lua "github.com/yuin/gopher-lua"
)

// rawNamed holds a named declaration (NPC, Item, Quest) before compilation.
type rawNamed struct {
	name  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or def if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// stringList returns the array part of a table as strings. Non-string
// entries are skipped.
func stringList(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.Len(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}

	defs := &state.Defs{Game: compileGame(coll.game)}

	for _, desc := range coll.locations {
		defs.Locations = append(defs.Locations, types.Location{Description: desc})
	}
	for _, raw := range coll.npcs {
		defs.NPCs = append(defs.NPCs, compileNPC(raw))
	}
	for _, raw := range coll.items {
		defs.Items = append(defs.Items, types.Item{
			Name:  raw.name,
			Value: getInt(raw.table, "value", 0),
		})
	}
	for _, raw := range coll.quests {
		defs.Quests = append(defs.Quests, types.Quest{
			Name:        raw.name,
			Description: getString(raw.table, "description"),
			Objective:   getString(raw.table, "objective"),
		})
	}
	if coll.replies != nil {
		defs.Replies = types.Replies{
			Lines:    stringList(coll.replies),
			Fallback: getString(coll.replies, "fallback"),
		}
	}

	return defs, nil
}

// compileGame reads the Game{} table. Lua's start is 1-based.
func compileGame(tbl *lua.LTable) types.GameDef {
	game := types.GameDef{
		Title:    getString(tbl, "title"),
		Version:  getString(tbl, "version"),
		Intro:    getString(tbl, "intro"),
		Farewell: getString(tbl, "farewell"),
		Start:    getInt(tbl, "start", 1) - 1,
	}
	if player := getTable(tbl, "player"); player != nil {
		game.PlayerHealth = getInt(player, "health", 0)
		game.PlayerAttack = getInt(player, "attack", 0)
	}
	return game
}

// compileNPC reads an NPC table. attack is optional and stays 0 when absent.
func compileNPC(raw rawNamed) types.NPC {
	return types.NPC{
		Name:       raw.name,
		Health:     getInt(raw.table, "health", 0),
		Damage:     getInt(raw.table, "damage", 0),
		Attack:     getInt(raw.table, "attack", 0),
		Greeting:   getString(raw.table, "greeting"),
		Dialogue:   stringList(getTable(raw.table, "dialogue")),
		QuestGiver: getBool(raw.table, "quest_giver", false),
	}
}
