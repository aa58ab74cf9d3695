package dto

import "encoding/json"

// ==================== UNLOCK / GAME DTOs ====================

type WinRequest struct {
	GameID string `json:"game_id" validate:"required" example:"match_pairs"`
	// Epoch is the client's reset-epoch counter for this playthrough.
	Epoch int `json:"epoch" validate:"gte=0" example:"1"`
	// Payload is the game-specific final state, checked server-side.
	Payload json.RawMessage `json:"payload" validate:"required"`
}

func (r WinRequest) Validate() error {
	return GetValidator().Struct(r)
}

// Reward is the revealed triple for a first-time win. Each field falls back
// to a generic placeholder when the content list is shorter than the counter.
type Reward struct {
	Message  string `json:"message"`
	PhotoURL string `json:"photo_url"`
	Treat    string `json:"treat"`
}

type WinResponse struct {
	GameID string `json:"game_id"`
	// FirstWin is false for replays of an already-completed game.
	FirstWin bool              `json:"first_win"`
	Reward   *Reward           `json:"reward,omitempty"`
	Unlocks  UnlockCountDTO    `json:"unlocks"`
	Progress ProgressResponse  `json:"progress"`
}

type UnlockCountDTO struct {
	Pictures int `json:"pictures"`
	Messages int `json:"messages"`
	Treats   int `json:"treats"`
}

type ProgressResponse struct {
	CompletedGames []string `json:"completed_games"`
	CompletedCount int      `json:"completed_count"`
	TotalGames     int      `json:"total_games"`
}

type GameInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Target string `json:"target"`
}

type WinMessageResponse struct {
	Message string `json:"message"`
}
