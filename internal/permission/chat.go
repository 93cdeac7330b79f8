package permission

import (
	"context"

	"Nexus_Social/internal/model"
)

// IsChatActive reports whether the chat is not deleted. Chats carry no ban
// flag.
func (e *Engine) IsChatActive(ctx context.Context, chatID uint64) (bool, error) {
	chat, err := e.Chats.ChatByID(ctx, chatID)
	if err != nil {
		return false, err
	}
	return chat.Active(), nil
}

// IsUserChatMember reports whether a membership row exists for the pair.
func (e *Engine) IsUserChatMember(ctx context.Context, userID, chatID uint64) (bool, error) {
	return e.ChatMembers.ChatMemberExists(ctx, chatID, userID)
}

// IsUserChatOwner reports whether the user owns the chat.
func (e *Engine) IsUserChatOwner(ctx context.Context, userID, chatID uint64) (bool, error) {
	chat, err := e.Chats.ChatByID(ctx, chatID)
	if err != nil {
		return false, err
	}
	return chat.OwnerID == userID, nil
}

// IsUserChatOwnerOrSystemModerator reports whether the user owns the chat or
// is a system moderator.
func (e *Engine) IsUserChatOwnerOrSystemModerator(ctx context.Context, userID, chatID uint64) (bool, error) {
	owner, err := e.IsUserChatOwner(ctx, userID, chatID)
	if err != nil {
		return false, err
	}
	if owner {
		return true, nil
	}
	return e.IsUserSystemModerator(ctx, userID)
}

// CanViewChat allows viewing when the chat is active and either not private
// or the actor is a member.
func (e *Engine) CanViewChat(ctx context.Context, actorID uint64, chat *model.Chat) (bool, error) {
	if !chat.Active() {
		return false, nil
	}
	if !chat.IsPrivate {
		return true, nil
	}
	return e.ChatMembers.ChatMemberExists(ctx, chat.ID, actorID)
}

// CanEditChat allows editing when the actor is the chat owner or a system
// moderator, and the chat is active.
func (e *Engine) CanEditChat(ctx context.Context, actorID, chatID uint64) (bool, error) {
	chat, err := e.Chats.ChatByID(ctx, chatID)
	if err != nil {
		return false, err
	}
	if !chat.Active() {
		return false, nil
	}
	if chat.OwnerID == actorID {
		return true, nil
	}
	return e.IsUserSystemModerator(ctx, actorID)
}

// CanUserCreateMessageInChat allows posting when the actor is a chat member
// and the chat is active.
func (e *Engine) CanUserCreateMessageInChat(ctx context.Context, actorID, chatID uint64) (bool, error) {
	chat, err := e.Chats.ChatByID(ctx, chatID)
	if err != nil {
		return false, err
	}
	if !chat.Active() {
		return false, nil
	}
	return e.ChatMembers.ChatMemberExists(ctx, chatID, actorID)
}

// CanUserViewMessagesInChat uses the same gate as posting: member of an
// active chat.
func (e *Engine) CanUserViewMessagesInChat(ctx context.Context, actorID, chatID uint64) (bool, error) {
	return e.CanUserCreateMessageInChat(ctx, actorID, chatID)
}

// CanUserModifyChatMessage allows editing when the message's chat is active,
// the actor is a member of that chat, and the actor sent the message.
func (e *Engine) CanUserModifyChatMessage(ctx context.Context, actorID, messageID uint64) (bool, error) {
	msg, err := e.ChatMessages.ChatMessageByID(ctx, messageID)
	if err != nil {
		return false, err
	}
	if msg.SenderID != actorID {
		return false, nil
	}
	return e.CanUserCreateMessageInChat(ctx, actorID, msg.ChatID)
}

// CanUserDeleteChatMessage allows deleting when the actor may modify the
// message, or the actor is the chat owner or a system moderator and the chat
// is active.
func (e *Engine) CanUserDeleteChatMessage(ctx context.Context, actorID, messageID uint64) (bool, error) {
	msg, err := e.ChatMessages.ChatMessageByID(ctx, messageID)
	if err != nil {
		return false, err
	}
	chat, err := e.Chats.ChatByID(ctx, msg.ChatID)
	if err != nil {
		return false, err
	}
	if !chat.Active() {
		return false, nil
	}
	if msg.SenderID == actorID {
		member, err := e.ChatMembers.ChatMemberExists(ctx, chat.ID, actorID)
		if err != nil {
			return false, err
		}
		if member {
			return true, nil
		}
	}
	if chat.OwnerID == actorID {
		return true, nil
	}
	return e.IsUserSystemModerator(ctx, actorID)
}

// CanUserViewInvitationsInChat allows listing a chat's invitations when the
// actor is a system moderator, or is both the chat owner and a chat member.
func (e *Engine) CanUserViewInvitationsInChat(ctx context.Context, actorID, chatID uint64) (bool, error) {
	owner, err := e.IsUserChatOwner(ctx, actorID, chatID)
	if err != nil {
		return false, err
	}
	if owner {
		member, err := e.ChatMembers.ChatMemberExists(ctx, chatID, actorID)
		if err != nil {
			return false, err
		}
		if member {
			return true, nil
		}
	}
	return e.IsUserSystemModerator(ctx, actorID)
}
