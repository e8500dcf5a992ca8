package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the world constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Location "description"
	L.SetGlobal("Location", L.NewFunction(func(L *lua.LState) int {
		coll.locations = append(coll.locations, L.CheckString(1))
		return 0
	}))

	// Replies { "first", "second", fallback = "..." }
	L.SetGlobal("Replies", L.NewFunction(func(L *lua.LState) int {
		coll.replies = L.CheckTable(1)
		return 0
	}))

	// NPC "name" { ... }, Item "name" { ... }, Quest "name" { ... } (curried).
	L.SetGlobal("NPC", named(L, &coll.npcs))
	L.SetGlobal("Item", named(L, &coll.items))
	L.SetGlobal("Quest", named(L, &coll.quests))
}

// named builds a curried constructor: Ctor("name") returns a function that
// takes the property table and appends it to dst.
func named(L *lua.LState, dst *[]rawNamed) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			*dst = append(*dst, rawNamed{name: name, table: tbl})
			return 0
		}))
		return 1
	})
}
