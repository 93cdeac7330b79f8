package pkg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotificationEventEncoding(t *testing.T) {
	ev := &NotificationEvent{
		ID:        7,
		EventType: "friend_request",
		ActorID:   1,
		SubjectID: 2,
		Payload:   json.RawMessage(`{"actor":1,"subject":2}`),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":7,"event":"friend_request","actor":1,"subject":2,"payload":{"actor":1,"subject":2}}`, string(b))
}

// 空 payload 不出现在编码结果里
func TestNotificationEventOmitsEmptyPayload(t *testing.T) {
	b, err := json.Marshal(&NotificationEvent{ID: 1, EventType: "private_message", ActorID: 3, SubjectID: 4})
	require.NoError(t, err)
	require.NotContains(t, string(b), "payload")
}

// 事件按接收方分区
func TestNotificationEventKey(t *testing.T) {
	ev := &NotificationEvent{ActorID: 3, SubjectID: 42}
	require.Equal(t, []byte("42"), ev.key())
}
