// Package loader compiles Lua world scripts into game definitions.
// The Lua VM is discarded after loading; nothing runs Lua at play time.
package loader

import (
	_ "embed"
	"fmt"

	"github.com/nathoo/wasteland/engine/state"
	lua "github.com/yuin/gopher-lua"
)

//go:embed world.lua
var worldScript string

// collector accumulates Lua definitions during script execution, in
// declaration order.
type collector struct {
	game      *lua.LTable
	locations []string
	npcs      []rawNamed
	items     []rawNamed
	quests    []rawNamed
	replies   *lua.LTable
}

// Load compiles the built-in world.
func Load() (*state.Defs, error) {
	return LoadString("world.lua", worldScript)
}

// LoadString executes a world script in a sandboxed VM, compiles what it
// declared, validates it, and returns the immutable Defs. name is used in
// error messages only.
func LoadString(name, src string) (*state.Defs, error) {
	L := newVM()
	defer L.Close()

	coll := &collector{}
	registerAPI(L, coll)

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}

	defs, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}

	if err := validate(defs); err != nil {
		return nil, err
	}

	return defs, nil
}

// newVM creates a sandboxed Lua state.
func newVM() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	return L
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require", "module",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// The world is fixed; no random content.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("random", lua.LNil)
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
