package games

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/heartwired/valentine_api/shared"
)

const (
	heartClickTargetScore = 15
	heartClickTimeBudget  = 15
)

// HeartClick is the floating-heart clicker: reach the target score before the
// timer runs out.
type HeartClick struct{}

func NewHeartClick() *HeartClick {
	return &HeartClick{}
}

func (g *HeartClick) ID() string {
	return shared.GameHeartClick
}

func (g *HeartClick) Name() string {
	return "Heart Catcher"
}

func (g *HeartClick) Target() string {
	return fmt.Sprintf("Catch %d hearts in %d seconds", heartClickTargetScore, heartClickTimeBudget)
}

type heartClickState struct {
	Score    int `json:"score"`
	TimeLeft int `json:"time_left"`
}

func (g *HeartClick) ValidateWin(payload json.RawMessage) error {
	var state heartClickState
	if err := sonic.Unmarshal(payload, &state); err != nil {
		return fmt.Errorf("malformed heart_click payload: %w", err)
	}

	if state.TimeLeft < 0 || state.TimeLeft > heartClickTimeBudget {
		return fmt.Errorf("time_left %d outside the %d second budget", state.TimeLeft, heartClickTimeBudget)
	}
	if state.Score < heartClickTargetScore {
		return fmt.Errorf("score %d below target %d", state.Score, heartClickTargetScore)
	}

	return nil
}
