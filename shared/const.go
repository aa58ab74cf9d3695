package shared

const (
	UserID    = "user_id"
	SessionID = "session_id"
	UserRole  = "user_role"

	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"

	KindPictures = "pictures"
	KindMessages = "messages"
	KindTreats   = "treats"

	GameMatchPairs = "match_pairs"
	GameHeartClick = "heart_click"
	GameLoveWord   = "love_word"
	GameCupidAim   = "cupid_aim"
	GameSweetSort  = "sweet_sort"
)

// AllGameIDs is the fixed set of mini-games, known at build time.
var AllGameIDs = []string{
	GameMatchPairs,
	GameHeartClick,
	GameLoveWord,
	GameCupidAim,
	GameSweetSort,
}

func IsKnownGame(gameID string) bool {
	for _, id := range AllGameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}
