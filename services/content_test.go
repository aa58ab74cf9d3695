package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartwired/valentine_api/model"
	"github.com/heartwired/valentine_api/shared"
)

func TestVisibleCount(t *testing.T) {
	tests := []struct {
		name        string
		role        string
		listLen     int
		counter     int
		totalSlots  int
		wantVisible int
		wantLocked  int
	}{
		{"user sees unlocked prefix", shared.RoleUser, 5, 2, 5, 2, 3},
		{"user with zero unlocks", shared.RoleUser, 5, 0, 5, 0, 5},
		{"user fully unlocked", shared.RoleUser, 5, 5, 5, 5, 0},
		{"counter beyond list length", shared.RoleUser, 3, 5, 5, 3, 2},
		{"list longer than slots", shared.RoleUser, 8, 7, 5, 7, 0},
		{"admin sees everything", shared.RoleAdmin, 5, 0, 5, 5, 0},
		{"admin with short list", shared.RoleAdmin, 2, 0, 5, 2, 0},
		{"guest sees nothing", shared.RoleGuest, 5, 3, 5, 0, 5},
		{"unknown role treated as guest", "mystery", 5, 3, 5, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, locked := visibleCount(tt.role, tt.listLen, tt.counter, tt.totalSlots)
			assert.Equal(t, tt.wantVisible, visible, "visible")
			assert.Equal(t, tt.wantLocked, locked, "locked")
		})
	}
}

func fixtureMessages(n int) []model.Message {
	out := make([]model.Message, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Message{
			ID:       fmt.Sprintf("msg-%d", i),
			Content:  fmt.Sprintf("note %d", i),
			Position: i,
		})
	}
	return out
}

func TestBuildMessageView_UserPrefix(t *testing.T) {
	messages := fixtureMessages(5)
	counts := &model.UnlockCount{Messages: 2}

	view := buildMessageView(messages, counts, shared.RoleUser, 5)

	require.Len(t, view.Messages, 2)
	assert.Equal(t, "msg-0", view.Messages[0].ID)
	assert.Equal(t, "msg-1", view.Messages[1].ID)
	assert.Equal(t, 3, view.Locked)
	assert.Equal(t, 5, view.Total)
}

func TestBuildMessageView_NilCounts(t *testing.T) {
	view := buildMessageView(fixtureMessages(5), nil, shared.RoleUser, 5)

	assert.Empty(t, view.Messages)
	assert.Equal(t, 5, view.Locked)
}

func TestBuildMessageView_Admin(t *testing.T) {
	view := buildMessageView(fixtureMessages(5), nil, shared.RoleAdmin, 5)

	require.Len(t, view.Messages, 5)
	assert.Equal(t, 0, view.Locked)
}

func TestBuildMessageView_Guest(t *testing.T) {
	view := buildMessageView(fixtureMessages(5), &model.UnlockCount{Messages: 4}, shared.RoleGuest, 5)

	assert.Empty(t, view.Messages)
	assert.Equal(t, 5, view.Locked)
}

func TestBuildPictureView(t *testing.T) {
	pictures := []model.Picture{
		{ID: "p0", Title: "first", URL: "/photos/0.png", Position: 0},
		{ID: "p1", Title: "second", URL: "/photos/1.png", Position: 1},
		{ID: "p2", Title: "third", URL: "/photos/2.png", Position: 2},
	}

	view := buildPictureView(pictures, &model.UnlockCount{Pictures: 1}, shared.RoleUser, 5)

	require.Len(t, view.Pictures, 1)
	assert.Equal(t, "p0", view.Pictures[0].ID)
	assert.Equal(t, "/photos/0.png", view.Pictures[0].URL)
	assert.Equal(t, 4, view.Locked)
	assert.Equal(t, 5, view.Total)
}

func TestBuildTreatView(t *testing.T) {
	treats := []model.SweetTreat{
		{ID: "t0", Name: "cupcake", Position: 0},
		{ID: "t1", Name: "macaron", Position: 1},
	}

	view := buildTreatView(treats, &model.UnlockCount{Treats: 2}, shared.RoleUser, 5)

	require.Len(t, view.Treats, 2)
	assert.Equal(t, "cupcake", view.Treats[0].Name)
	assert.Equal(t, 3, view.Locked)
}
