// Wasteland is a small console role-playing game: two NPCs, two items, two
// fetch quests and a numbered conversation menu.
// Usage: wasteland [--version] [--plain] [--trace] [--script <file>] [--config <file>]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nathoo/wasteland/cli"
	"github.com/nathoo/wasteland/config"
	"github.com/nathoo/wasteland/engine"
	"github.com/nathoo/wasteland/loader"
	"github.com/nathoo/wasteland/logger"
	"github.com/nathoo/wasteland/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: wasteland [--version] [--plain] [--trace] [--script <file>] [--config <file>]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one session and returns the process exit code. Deferred cleanup
// always runs before the code is returned.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	plain := false
	trace := false
	var scriptFile string
	var configFile string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Fprintf(stdout, "wasteland %s (commit %s, built %s)\n", version, commit, date)
			return 0
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script", "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(stderr, "%s requires a file path\n", args[i])
				return 1
			}
			if args[i] == "--script" {
				scriptFile = args[i+1]
			} else {
				configFile = args[i+1]
			}
			i++
		default:
			fmt.Fprintf(stderr, "unknown argument %q\n%s\n", args[i], usage)
			return 1
		}
	}

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(stderr, "Error loading environment: %v\n", err)
		return 1
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	log, closer := logger.New(cfg.Log, stderr)
	defer closer.Close()

	// Compile the built-in Lua world.
	defs, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading game: %v\n", err)
		return 1
	}

	eng := engine.New(defs, engine.Options{
		NPCAttackFromDamage: cfg.Combat.NPCAttackFromDamage,
		Logger:              log,
	})
	log.Info("session started", "version", version,
		"world", defs.Game.Title, "world_version", defs.Game.Version)
	defer func() {
		log.Info("session ended", "turns", eng.World.TurnCount, "defeated", eng.World.Defeated)
	}()

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error opening script: %v\n", err)
			return 1
		}
		defer f.Close()
		c := cli.New(eng)
		c.In = f
		c.Out = stdout
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return 0
	}

	// Use plain CLI if asked to or stdout is not a terminal.
	if plain || cfg.UI.Plain || !isTerminal(stdout) {
		c := cli.New(eng)
		c.In = stdin
		c.Out = stdout
		c.Trace = trace
		c.Run()
		return 0
	}

	if err := tui.Run(eng, tui.Options{HistorySize: cfg.UI.HistorySize, Trace: trace}, stdout); err != nil {
		log.Error("tui failed", "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// isTerminal returns true if w is a terminal (not piped/redirected).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
