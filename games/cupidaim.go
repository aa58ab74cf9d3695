package games

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/heartwired/valentine_api/shared"
)

const cupidAimTargetHits = 10

// CupidAim is the target-shooting game: land ten arrows.
type CupidAim struct{}

func NewCupidAim() *CupidAim {
	return &CupidAim{}
}

func (g *CupidAim) ID() string {
	return shared.GameCupidAim
}

func (g *CupidAim) Name() string {
	return "Cupid's Aim"
}

func (g *CupidAim) Target() string {
	return fmt.Sprintf("Hit %d targets", cupidAimTargetHits)
}

type cupidAimState struct {
	Hits  int `json:"hits"`
	Shots int `json:"shots"`
}

func (g *CupidAim) ValidateWin(payload json.RawMessage) error {
	var state cupidAimState
	if err := sonic.Unmarshal(payload, &state); err != nil {
		return fmt.Errorf("malformed cupid_aim payload: %w", err)
	}

	if state.Hits < 0 || state.Shots < 0 {
		return fmt.Errorf("negative counters in payload")
	}
	if state.Shots < state.Hits {
		return fmt.Errorf("%d hits from %d shots is impossible", state.Hits, state.Shots)
	}
	if state.Hits < cupidAimTargetHits {
		return fmt.Errorf("%d hits below target %d", state.Hits, cupidAimTargetHits)
	}

	return nil
}
