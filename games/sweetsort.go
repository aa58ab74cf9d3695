package games

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/heartwired/valentine_api/shared"
)

const sweetsPerColor = 4

// sweetColors are the three sorting buckets.
var sweetColors = []string{"pink", "red", "purple"}

// SweetSort is the color-sorting game: every sweet in its matching bucket.
type SweetSort struct{}

func NewSweetSort() *SweetSort {
	return &SweetSort{}
}

func (g *SweetSort) ID() string {
	return shared.GameSweetSort
}

func (g *SweetSort) Name() string {
	return "Sweet Sort"
}

func (g *SweetSort) Target() string {
	return fmt.Sprintf("Sort all %d sweets by color", sweetsPerColor*len(sweetColors))
}

type sweetSortState struct {
	// Buckets maps bucket color to the colors of the sweets placed in it.
	Buckets map[string][]string `json:"buckets"`
}

func (g *SweetSort) ValidateWin(payload json.RawMessage) error {
	var state sweetSortState
	if err := sonic.Unmarshal(payload, &state); err != nil {
		return fmt.Errorf("malformed sweet_sort payload: %w", err)
	}

	if len(state.Buckets) != len(sweetColors) {
		return fmt.Errorf("expected %d buckets, got %d", len(sweetColors), len(state.Buckets))
	}

	for _, color := range sweetColors {
		sweets, ok := state.Buckets[color]
		if !ok {
			return fmt.Errorf("missing bucket %q", color)
		}
		if len(sweets) != sweetsPerColor {
			return fmt.Errorf("bucket %q holds %d sweets, want %d", color, len(sweets), sweetsPerColor)
		}
		for _, sweet := range sweets {
			if sweet != color {
				return fmt.Errorf("%s sweet in the %s bucket", sweet, color)
			}
		}
	}

	return nil
}
