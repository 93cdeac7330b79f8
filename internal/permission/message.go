package permission

import "context"

// CanUserReadPrivateMessage allows reading when the actor sent or received
// the message.
func (e *Engine) CanUserReadPrivateMessage(ctx context.Context, actorID, messageID uint64) (bool, error) {
	msg, err := e.PrivateMessages.PrivateMessageByID(ctx, messageID)
	if err != nil {
		return false, err
	}
	return msg.SenderID == actorID || msg.ReceiverID == actorID, nil
}

// CanUserModifyPrivateMessage allows editing only for the sender.
func (e *Engine) CanUserModifyPrivateMessage(ctx context.Context, actorID, messageID uint64) (bool, error) {
	msg, err := e.PrivateMessages.PrivateMessageByID(ctx, messageID)
	if err != nil {
		return false, err
	}
	return msg.SenderID == actorID, nil
}

// CanUserDeletePrivateMessage allows deleting for the sender or a system
// moderator.
func (e *Engine) CanUserDeletePrivateMessage(ctx context.Context, actorID, messageID uint64) (bool, error) {
	msg, err := e.PrivateMessages.PrivateMessageByID(ctx, messageID)
	if err != nil {
		return false, err
	}
	if msg.SenderID == actorID {
		return true, nil
	}
	return e.IsUserSystemModerator(ctx, actorID)
}
