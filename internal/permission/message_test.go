package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Nexus_Social/internal/model"
)

func privateMessageStore() *fakeStore {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addUser(model.User{ID: 3}).
		addUser(model.User{ID: 4, SystemRole: model.SystemRoleModerator})
	store.privateMessages[100] = &model.PrivateMessage{ID: 100, SenderID: 1, ReceiverID: 2}
	return store
}

func TestCanUserReadPrivateMessage(t *testing.T) {
	engine := newEngine(privateMessageStore())

	tests := []struct {
		name    string
		actorID uint64
		want    bool
	}{
		{"sender", 1, true},
		{"receiver", 2, true},
		{"third party", 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserReadPrivateMessage(context.Background(), tt.actorID, 100)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := engine.CanUserReadPrivateMessage(context.Background(), 1, 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCanUserModifyPrivateMessage(t *testing.T) {
	engine := newEngine(privateMessageStore())

	tests := []struct {
		name    string
		actorID uint64
		want    bool
	}{
		{"sender", 1, true},
		{"receiver", 2, false},
		{"system moderator", 4, false}, // editing stays with the sender
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserModifyPrivateMessage(context.Background(), tt.actorID, 100)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanUserDeletePrivateMessage(t *testing.T) {
	engine := newEngine(privateMessageStore())

	tests := []struct {
		name    string
		actorID uint64
		want    bool
	}{
		{"sender", 1, true},
		{"receiver", 2, false},
		{"system moderator", 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserDeletePrivateMessage(context.Background(), tt.actorID, 100)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
