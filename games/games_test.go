package games

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartwired/valentine_api/shared"
)

func TestMatchPairs_ValidateWin(t *testing.T) {
	game := NewMatchPairs()

	fullBoard := func(allMatched bool) string {
		symbols := []string{"heart", "heart", "rose", "rose", "ring", "ring", "dove", "dove"}
		cards := ""
		for i, s := range symbols {
			matched := "true"
			if !allMatched && i == 7 {
				matched = "false"
			}
			if i > 0 {
				cards += ","
			}
			cards += `{"index":` + string(rune('0'+i)) + `,"symbol":"` + s + `","matched":` + matched + `}`
		}
		return `{"cards":[` + cards + `]}`
	}

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"all pairs matched", fullBoard(true), false},
		{"one card unmatched", fullBoard(false), true},
		{"too few cards", `{"cards":[{"index":0,"symbol":"heart","matched":true}]}`, true},
		{"duplicate index", `{"cards":[{"index":0,"symbol":"a","matched":true},{"index":0,"symbol":"a","matched":true},{"index":2,"symbol":"b","matched":true},{"index":3,"symbol":"b","matched":true},{"index":4,"symbol":"c","matched":true},{"index":5,"symbol":"c","matched":true},{"index":6,"symbol":"d","matched":true},{"index":7,"symbol":"d","matched":true}]}`, true},
		{"index out of range", `{"cards":[{"index":8,"symbol":"a","matched":true},{"index":1,"symbol":"a","matched":true},{"index":2,"symbol":"b","matched":true},{"index":3,"symbol":"b","matched":true},{"index":4,"symbol":"c","matched":true},{"index":5,"symbol":"c","matched":true},{"index":6,"symbol":"d","matched":true},{"index":7,"symbol":"d","matched":true}]}`, true},
		{"lopsided symbols", `{"cards":[{"index":0,"symbol":"a","matched":true},{"index":1,"symbol":"a","matched":true},{"index":2,"symbol":"a","matched":true},{"index":3,"symbol":"a","matched":true},{"index":4,"symbol":"c","matched":true},{"index":5,"symbol":"c","matched":true},{"index":6,"symbol":"d","matched":true},{"index":7,"symbol":"d","matched":true}]}`, true},
		{"malformed json", `{"cards":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := game.ValidateWin(json.RawMessage(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHeartClick_ValidateWin(t *testing.T) {
	game := NewHeartClick()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"target met with time left", `{"score":15,"time_left":3}`, false},
		{"target exceeded at buzzer", `{"score":22,"time_left":0}`, false},
		{"score below target", `{"score":14,"time_left":5}`, true},
		{"negative time", `{"score":20,"time_left":-1}`, true},
		{"time over budget", `{"score":20,"time_left":16}`, true},
		{"malformed json", `{"score":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := game.ValidateWin(json.RawMessage(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoveWord_ValidateWin(t *testing.T) {
	game := NewLoveWord()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"three pool words", `{"solved_words":["FOREVER","ROMANCE","PASSION"]}`, false},
		{"case and whitespace normalized", `{"solved_words":[" forever ","Romance","beloved"]}`, false},
		{"all five words", `{"solved_words":["FOREVER","ROMANCE","PASSION","SWEETHEART","BELOVED"]}`, false},
		{"too few words", `{"solved_words":["FOREVER","ROMANCE"]}`, true},
		{"word outside the pool", `{"solved_words":["FOREVER","ROMANCE","DARLING"]}`, true},
		{"same word repeated", `{"solved_words":["FOREVER","forever","ROMANCE"]}`, true},
		{"malformed json", `{"solved_words":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := game.ValidateWin(json.RawMessage(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCupidAim_ValidateWin(t *testing.T) {
	game := NewCupidAim()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"exact target", `{"hits":10,"shots":12}`, false},
		{"perfect run", `{"hits":10,"shots":10}`, false},
		{"below target", `{"hits":9,"shots":20}`, true},
		{"more hits than shots", `{"hits":11,"shots":5}`, true},
		{"negative hits", `{"hits":-1,"shots":5}`, true},
		{"malformed json", `{"hits":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := game.ValidateWin(json.RawMessage(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSweetSort_ValidateWin(t *testing.T) {
	game := NewSweetSort()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			"all sorted",
			`{"buckets":{"pink":["pink","pink","pink","pink"],"red":["red","red","red","red"],"purple":["purple","purple","purple","purple"]}}`,
			false,
		},
		{
			"sweet in wrong bucket",
			`{"buckets":{"pink":["pink","pink","pink","red"],"red":["red","red","red","pink"],"purple":["purple","purple","purple","purple"]}}`,
			true,
		},
		{
			"missing bucket",
			`{"buckets":{"pink":["pink","pink","pink","pink"],"red":["red","red","red","red"]}}`,
			true,
		},
		{
			"uneven bucket",
			`{"buckets":{"pink":["pink","pink","pink"],"red":["red","red","red","red"],"purple":["purple","purple","purple","purple","purple"]}}`,
			true,
		},
		{"malformed json", `{"buckets":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := game.ValidateWin(json.RawMessage(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegistry_Default(t *testing.T) {
	r := Default()

	require.Equal(t, len(shared.AllGameIDs), r.Count())

	for _, id := range shared.AllGameIDs {
		g, ok := r.Get(id)
		require.True(t, ok, "game %s should be registered", id)
		assert.Equal(t, id, g.ID())
		assert.NotEmpty(t, g.Name())
		assert.NotEmpty(t, g.Target())
	}

	_, ok := r.Get("unknown_game")
	assert.False(t, ok)
}

func TestRegistry_ListSorted(t *testing.T) {
	r := Default()

	list := r.List()
	require.Len(t, list, len(shared.AllGameIDs))
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID(), list[i].ID())
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register(nil))
	assert.NoError(t, r.Register(NewHeartClick()))
	assert.Equal(t, 1, r.Count())

	// Re-registering the same id replaces, not duplicates.
	assert.NoError(t, r.Register(NewHeartClick()))
	assert.Equal(t, 1, r.Count())
}
