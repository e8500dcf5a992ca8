// Package dialogue implements the NPC conversation menu.
package dialogue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/wasteland/types"
)

// EndOption is the menu line that closes a conversation.
const EndOption = "0. [End conversation]"

// Menu returns the lines presenting npc's dialogue options, numbered from 1.
func Menu(npc types.NPC) []string {
	lines := make([]string, 0, len(npc.Dialogue)+2)
	lines = append(lines, fmt.Sprintf("Choose a dialogue option (%s):", npc.Name))
	for i, opt := range npc.Dialogue {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, opt))
	}
	return append(lines, EndOption)
}

// ParseChoice reads the player's choice. Only a leading integer counts;
// anything outside [1, len(options)] is not a valid choice.
func ParseChoice(input string, npc types.NPC) (int, bool) {
	input = strings.TrimSpace(input)
	end := 0
	if end < len(input) && (input[end] == '+' || input[end] == '-') {
		end++
	}
	for end < len(input) && input[end] >= '0' && input[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(input[:end])
	if err != nil {
		return 0, false
	}
	if n < 1 || n > len(npc.Dialogue) {
		return n, false
	}
	return n, true
}

// Reply returns the NPC's answer to option choice (1-based). Options beyond
// the canned lines get the fallback.
func Reply(npc types.NPC, choice int, replies types.Replies) string {
	text := replies.Fallback
	if choice >= 1 && choice <= len(replies.Lines) {
		text = replies.Lines[choice-1]
	}
	return fmt.Sprintf("%s: %s", npc.Name, text)
}
