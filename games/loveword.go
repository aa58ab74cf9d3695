package games

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/heartwired/valentine_api/shared"
)

const loveWordTargetSolved = 3

// loveWords is the fixed puzzle pool the client scrambles from.
var loveWords = map[string]bool{
	"FOREVER":    true,
	"ROMANCE":    true,
	"PASSION":    true,
	"SWEETHEART": true,
	"BELOVED":    true,
}

// LoveWord is the word-unscramble game: solve three puzzles from the pool.
type LoveWord struct{}

func NewLoveWord() *LoveWord {
	return &LoveWord{}
}

func (g *LoveWord) ID() string {
	return shared.GameLoveWord
}

func (g *LoveWord) Name() string {
	return "Love Letters"
}

func (g *LoveWord) Target() string {
	return fmt.Sprintf("Unscramble %d love words", loveWordTargetSolved)
}

type loveWordState struct {
	SolvedWords []string `json:"solved_words"`
}

func (g *LoveWord) ValidateWin(payload json.RawMessage) error {
	var state loveWordState
	if err := sonic.Unmarshal(payload, &state); err != nil {
		return fmt.Errorf("malformed love_word payload: %w", err)
	}

	if len(state.SolvedWords) < loveWordTargetSolved {
		return fmt.Errorf("solved %d words, target is %d", len(state.SolvedWords), loveWordTargetSolved)
	}

	seen := make(map[string]bool, len(state.SolvedWords))
	for _, word := range state.SolvedWords {
		normalized := strings.ToUpper(strings.TrimSpace(word))
		if !loveWords[normalized] {
			return fmt.Errorf("%q is not in the puzzle pool", word)
		}
		if seen[normalized] {
			return fmt.Errorf("word %q solved twice", word)
		}
		seen[normalized] = true
	}

	return nil
}
