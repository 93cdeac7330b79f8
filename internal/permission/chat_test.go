package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Nexus_Social/internal/model"
)

func TestCanViewChat(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addChat(model.Chat{ID: 10, IsPrivate: false}).
		addChat(model.Chat{ID: 11, IsPrivate: true}).
		addChat(model.Chat{ID: 12, IsPrivate: false, Deleted: true}).
		addChatMember(11, 1)
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		chatID  uint64
		want    bool
	}{
		{"public chat", 2, 10, true},
		{"private chat, member", 1, 11, true},
		{"private chat, stranger", 2, 11, false},
		{"deleted chat", 1, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanViewChat(context.Background(), tt.actorID, store.chats[tt.chatID])
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanEditChat(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addUser(model.User{ID: 3, SystemRole: model.SystemRoleModerator}).
		addChat(model.Chat{ID: 10, OwnerID: 1}).
		addChat(model.Chat{ID: 11, OwnerID: 1, Deleted: true})
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		chatID  uint64
		want    bool
	}{
		{"owner", 1, 10, true},
		{"stranger", 2, 10, false},
		{"system moderator", 3, 10, true},
		{"owner of deleted chat", 1, 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanEditChat(context.Background(), tt.actorID, tt.chatID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChatMessageGate_ReadMatchesWrite(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addChat(model.Chat{ID: 10}).
		addChat(model.Chat{ID: 11, Deleted: true}).
		addChatMember(10, 1).
		addChatMember(11, 1)
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		chatID  uint64
		want    bool
	}{
		{"member of active chat", 1, 10, true},
		{"non-member", 2, 10, false},
		{"member of deleted chat", 1, 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			write, err := engine.CanUserCreateMessageInChat(context.Background(), tt.actorID, tt.chatID)
			require.NoError(t, err)
			read, err := engine.CanUserViewMessagesInChat(context.Background(), tt.actorID, tt.chatID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, write)
			assert.Equal(t, write, read)
		})
	}
}

func TestCanUserModifyChatMessage(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addChat(model.Chat{ID: 10}).
		addChat(model.Chat{ID: 11, Deleted: true}).
		addChatMember(10, 1)
	store.chatMessages[100] = &model.ChatMessage{ID: 100, ChatID: 10, SenderID: 1}
	store.chatMessages[101] = &model.ChatMessage{ID: 101, ChatID: 10, SenderID: 2}
	store.chatMessages[102] = &model.ChatMessage{ID: 102, ChatID: 11, SenderID: 1}
	engine := newEngine(store)

	tests := []struct {
		name      string
		actorID   uint64
		messageID uint64
		want      bool
	}{
		{"sender and member", 1, 100, true},
		{"not the sender", 1, 101, false},
		{"sender left the chat", 2, 101, false},
		{"sender in deleted chat", 1, 102, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserModifyChatMessage(context.Background(), tt.actorID, tt.messageID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := engine.CanUserModifyChatMessage(context.Background(), 1, 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCanUserDeleteChatMessage(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addUser(model.User{ID: 3, SystemRole: model.SystemRoleModerator}).
		addUser(model.User{ID: 4}).
		addChat(model.Chat{ID: 10, OwnerID: 4}).
		addChat(model.Chat{ID: 11, OwnerID: 4, Deleted: true}).
		addChatMember(10, 1)
	store.chatMessages[100] = &model.ChatMessage{ID: 100, ChatID: 10, SenderID: 1}
	store.chatMessages[101] = &model.ChatMessage{ID: 101, ChatID: 11, SenderID: 1}
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		msgID   uint64
		want    bool
	}{
		{"sender and member", 1, 100, true},
		{"stranger", 2, 100, false},
		{"system moderator", 3, 100, true},
		{"chat owner", 4, 100, true},
		{"owner of deleted chat", 4, 101, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserDeleteChatMessage(context.Background(), tt.actorID, tt.msgID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanUserViewInvitationsInChat(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addUser(model.User{ID: 3, SystemRole: model.SystemRoleAdmin}).
		addUser(model.User{ID: 4}).
		addChat(model.Chat{ID: 10, OwnerID: 1}).
		addChat(model.Chat{ID: 11, OwnerID: 4}).
		addChatMember(10, 1)
	engine := newEngine(store)

	tests := []struct {
		name    string
		actorID uint64
		chatID  uint64
		want    bool
	}{
		{"owner who is also member", 1, 10, true},
		{"owner without membership row", 4, 11, false},
		{"plain member", 2, 10, false},
		{"system admin", 3, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.CanUserViewInvitationsInChat(context.Background(), tt.actorID, tt.chatID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsUserChatOwnerOrSystemModerator(t *testing.T) {
	store := newFakeStore().
		addUser(model.User{ID: 1}).
		addUser(model.User{ID: 2}).
		addUser(model.User{ID: 3, SystemRole: model.SystemRoleModerator}).
		addChat(model.Chat{ID: 10, OwnerID: 1})
	engine := newEngine(store)

	tests := []struct {
		userID uint64
		want   bool
	}{
		{1, true},
		{2, false},
		{3, true},
	}
	for _, tt := range tests {
		got, err := engine.IsUserChatOwnerOrSystemModerator(context.Background(), tt.userID, 10)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "user %d", tt.userID)
	}
}
