// Package cli provides the line-oriented game loop, output formatting, and
// meta-command dispatch.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/wasteland/engine"
	"github.com/nathoo/wasteland/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It shows the intro, then loops: describe the
// location, prompt, read a line, step the engine. It returns when the engine
// asks to quit or input runs out.
func (c *CLI) Run() {
	game := c.Engine.Defs.Game
	if game.Intro != "" {
		c.printLine(game.Intro)
	}

	scanner := bufio.NewScanner(c.In)
	for {
		// A pending dialogue choice is read straight after the menu.
		talking := c.Engine.InConversation()
		if !talking {
			c.printLine(c.Engine.Describe())
			c.print("> ")
		}

		input, ok := c.readLine(scanner)
		if !ok {
			// End of input counts as exit.
			if !talking {
				c.printLine("")
			}
			c.printLine(game.Farewell)
			return
		}

		// Meta-commands start with '/'.
		if !talking && strings.HasPrefix(input, "/") {
			c.handleMeta(input)
			continue
		}

		result := c.Engine.Step(input)
		c.printResult(result)

		if c.Trace {
			c.printTrace(result)
		}
		if result.Quit {
			return
		}
	}
}

// readLine returns the next input line. During script playback comment and
// blank lines are skipped and the line is echoed after the prompt.
func (c *CLI) readLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		input := strings.TrimSuffix(scanner.Text(), "\r")
		if !c.EchoInput {
			return input, true
		}
		if strings.HasPrefix(input, "#") || strings.TrimSpace(input) == "" {
			continue
		}
		c.printLine(input)
		return input, true
	}
	return "", false
}

// handleMeta dispatches meta-commands.
func (c *CLI) handleMeta(input string) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /help   Show this help",
		"  /state  Debug: dump current state",
		"  /trace  Toggle debug trace output",
		"",
		"Type 'help' for game commands.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	for _, line := range c.Engine.StateLines() {
		c.printSystem(line)
	}
}

func (c *CLI) printTrace(result types.Result) {
	for _, line := range engine.TraceLines(result) {
		c.printSystem(line)
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
