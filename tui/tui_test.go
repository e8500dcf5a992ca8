package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/wasteland/engine"
	"github.com/nathoo/wasteland/loader"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"You are in a dark room.", kindNarration},
		{"You see:", kindHeading},
		{"NPCs:", kindHeading},
		{"Inventory:", kindHeading},
		{"- Sword (Value: 100)", kindListItem},
		{"Choose a dialogue option (John):", kindDialogue},
		{"1. Tell me about yourself.", kindDialogue},
		{"0. [End conversation]", kindDialogue},
		{"You attacked Jane for 10 damage.", kindCombat},
		{"Jane attacked you for 8 damage.", kindCombat},
		{"John has been defeated!", kindCombat},
		{"You have been defeated!", kindCombat},
		{"You completed the quest: Find the Sword!", kindQuest},
		{"Quest: Find the Sword", kindQuest},
		{"There's no 'Dog' here.", kindError},
		{"Unknown command.", kindError},
		{"[trace] Effects: 2", kindTrace},
		{"[Trace output enabled.]", kindSystem},
		{"", kindNarration},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsMenuOption(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"1. Who are you?", true},
		{"12. Later.", true},
		{"0. [End conversation]", true},
		{"1.5 damage", false},
		{". nothing", false},
		{"Hello.", false},
	}
	for _, tt := range tests {
		if got := isMenuOption(tt.line); got != tt.want {
			t.Errorf("isMenuOption(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"I scavenge for valuable items and trade with other survivors.", 30,
			"I scavenge for valuable items\nand trade with other\nsurvivors."},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("interact Sword")
	h.Push("inventory")

	for _, want := range []string{"inventory", "interact Sword", "look", "look"} {
		prev, ok := h.Prev()
		if !ok || prev != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, prev, ok)
		}
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("help")

	h.Prev()
	h.Prev()
	next, ok := h.Next()
	if !ok || next != "help" {
		t.Errorf("expected 'help', got %q (ok=%v)", next, ok)
	}
	if _, ok := h.Next(); ok {
		t.Error("expected end of history")
	}
	if _, ok := h.Next(); ok {
		t.Error("Next without navigation should fail")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("Prev on empty history should fail")
	}
	h.Push("")
	if h.Len() != 0 {
		t.Error("empty commands must not be stored")
	}
}

func TestHistory_RingOverwritesOldest(t *testing.T) {
	h := NewHistory(3)
	for _, cmd := range []string{"a", "b", "c", "d", "e"} {
		h.Push(cmd)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}
	var got []string
	for i := 0; i < 3; i++ {
		prev, _ := h.Prev()
		got = append(got, prev)
	}
	if strings.Join(got, ",") != "e,d,c" {
		t.Errorf("expected e,d,c, got %v", got)
	}
}

func TestHistory_NoDuplicatesAndDisabled(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("look")
	if h.Len() != 1 {
		t.Errorf("expected consecutive duplicate skipped, got %d", h.Len())
	}

	off := NewHistory(0)
	off.Push("look")
	if off.Len() != 0 {
		t.Error("zero-size history must store nothing")
	}
}

func newTestModel(t *testing.T, opts engine.Options) Model {
	t.Helper()
	defs, err := loader.Load()
	if err != nil {
		t.Fatalf("loading world: %v", err)
	}
	m := New(engine.New(defs, opts), Options{HistorySize: 10})
	m.width = 120
	return m
}

// submit types input and presses enter.
func submit(t *testing.T, m Model, input string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(input)
	model, cmd := m.handleEnter()
	return model.(Model), cmd
}

func rawText(m Model) string {
	var lines []string
	for _, rl := range m.rawLines {
		lines = append(lines, rl.text)
	}
	return strings.Join(lines, "\n")
}

func TestInitialOutput(t *testing.T) {
	m := newTestModel(t, engine.Options{})
	msg, ok := m.initialOutput()().(gameOutputMsg)
	if !ok {
		t.Fatal("expected gameOutputMsg")
	}
	want := []string{"Welcome to Fallout 4 Text-Based RPG!", "You are in a dark room."}
	if strings.Join(msg.lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("got %v, want %v", msg.lines, want)
	}
}

func TestHandleEnter_CommandAppendsLocation(t *testing.T) {
	m := newTestModel(t, engine.Options{})
	m, cmd := submit(t, m, "interact Sword")
	if cmd != nil {
		t.Error("no command expected for a normal turn")
	}

	got := rawText(m)
	want := "> interact Sword\nYou picked up a Sword.\nYou completed the quest: Find the Sword!\nYou are in a dark room.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if m.history.Len() != 1 {
		t.Error("command should be in history")
	}
}

func TestHandleEnter_ConversationSwitchesPrompt(t *testing.T) {
	m := newTestModel(t, engine.Options{})
	m, _ = submit(t, m, "interact Jane")

	if m.input.Prompt != choicePrompt {
		t.Errorf("expected choice prompt, got %q", m.input.Prompt)
	}
	if strings.Contains(rawText(m), "dark room") {
		t.Error("location must not follow the dialogue menu")
	}

	m, _ = submit(t, m, "0")
	if m.input.Prompt != commandPrompt {
		t.Errorf("expected command prompt, got %q", m.input.Prompt)
	}
	if m.history.Len() != 1 {
		t.Errorf("dialogue choices must not be recorded, got %d entries", m.history.Len())
	}
	if !strings.HasSuffix(rawText(m), "> 0\nYou are in a dark room.\n") {
		t.Errorf("unexpected output %q", rawText(m))
	}
}

func TestHandleEnter_ExitQuits(t *testing.T) {
	m := newTestModel(t, engine.Options{})
	m, cmd := submit(t, m, "exit")

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !m.quitting || len(m.final) != 1 || m.final[0] != "Thanks for playing!" {
		t.Errorf("expected farewell as final output, got %v", m.final)
	}
	if m.View() != "" {
		t.Error("quitting model renders nothing")
	}
}

func TestHandleEnter_DefeatQuitsWithoutFarewell(t *testing.T) {
	m := newTestModel(t, engine.Options{NPCAttackFromDamage: true})
	m.engine.World.Player.Health = 5

	m, cmd := submit(t, m, "attack John")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	joined := strings.Join(m.final, "\n")
	if !strings.HasSuffix(joined, "You have been defeated!") || strings.Contains(joined, "Thanks for playing!") {
		t.Errorf("unexpected final output %v", m.final)
	}
}

func TestHandleEnter_MetaCommands(t *testing.T) {
	m := newTestModel(t, engine.Options{})

	m, _ = submit(t, m, "/trace")
	if !m.trace {
		t.Fatal("expected trace enabled")
	}
	m, _ = submit(t, m, "interact Shield")
	if !strings.Contains(rawText(m), "[trace]   item_taken") {
		t.Errorf("expected trace lines, got %q", rawText(m))
	}

	m, _ = submit(t, m, "/state")
	if !strings.Contains(rawText(m), "Inventory: [Shield]") {
		t.Errorf("expected state dump, got %q", rawText(m))
	}

	m, _ = submit(t, m, "/bogus")
	if !strings.Contains(rawText(m), "Unknown command: /bogus") {
		t.Errorf("expected unknown meta message, got %q", rawText(m))
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := newTestModel(t, engine.Options{})
	joined := strings.Join(m.handleMeta("/help"), "\n")
	for _, expected := range []string{"/state", "/trace", "help"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("expected %q in help output", expected)
		}
	}
}

func TestStatusBar(t *testing.T) {
	m := newTestModel(t, engine.Options{})
	m, _ = submit(t, m, "interact Sword")

	bar := m.renderStatusBar()
	for _, want := range []string{"Location 1", "HP: 100", "Quests: 1/2", "Inv: Sword", "T:1"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar %q missing %q", bar, want)
		}
	}

	m, _ = submit(t, m, "interact John")
	if bar := m.renderStatusBar(); !strings.Contains(bar, "Talking: John") {
		t.Errorf("status bar %q should show the conversation", bar)
	}
}

func TestUpdate_WindowSizeMakesReady(t *testing.T) {
	m := newTestModel(t, engine.Options{})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = model.(Model)
	if !m.ready {
		t.Fatal("expected ready after resize")
	}
	if m.viewport.Height != 22 {
		t.Errorf("expected viewport height 22, got %d", m.viewport.Height)
	}
}
