package games

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/heartwired/valentine_api/shared"
)

const (
	matchPairsCount = 4
	matchCardsCount = matchPairsCount * 2
)

// MatchPairs is the card-flip memory game: 8 cards, 4 symbol pairs, all
// matched to win.
type MatchPairs struct{}

func NewMatchPairs() *MatchPairs {
	return &MatchPairs{}
}

func (g *MatchPairs) ID() string {
	return shared.GameMatchPairs
}

func (g *MatchPairs) Name() string {
	return "Love Match"
}

func (g *MatchPairs) Target() string {
	return fmt.Sprintf("Match all %d pairs", matchPairsCount)
}

type matchPairsState struct {
	Cards []matchCard `json:"cards"`
}

type matchCard struct {
	Index   int    `json:"index"`
	Symbol  string `json:"symbol"`
	Matched bool   `json:"matched"`
}

func (g *MatchPairs) ValidateWin(payload json.RawMessage) error {
	var state matchPairsState
	if err := sonic.Unmarshal(payload, &state); err != nil {
		return fmt.Errorf("malformed match_pairs payload: %w", err)
	}

	if len(state.Cards) != matchCardsCount {
		return fmt.Errorf("expected %d cards, got %d", matchCardsCount, len(state.Cards))
	}

	seen := make(map[int]bool, matchCardsCount)
	symbols := make(map[string]int, matchPairsCount)
	for _, card := range state.Cards {
		if card.Index < 0 || card.Index >= matchCardsCount {
			return fmt.Errorf("card index %d out of range", card.Index)
		}
		if seen[card.Index] {
			return fmt.Errorf("duplicate card index %d", card.Index)
		}
		seen[card.Index] = true

		if !card.Matched {
			return fmt.Errorf("card %d is not matched", card.Index)
		}
		symbols[card.Symbol]++
	}

	if len(symbols) != matchPairsCount {
		return fmt.Errorf("expected %d distinct symbols, got %d", matchPairsCount, len(symbols))
	}
	for symbol, count := range symbols {
		if count != 2 {
			return fmt.Errorf("symbol %q appears %d times, want 2", symbol, count)
		}
	}

	return nil
}
