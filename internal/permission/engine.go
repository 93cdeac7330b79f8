// Package permission decides whether an actor may perform an action on a
// target entity. Every rule is a stateless predicate over entity snapshots
// fetched through read-only lookup collaborators; the package never mutates
// anything and holds no global state.
//
// Two outcomes exist: a boolean answer, or a not-found error propagated
// unmodified from a lookup. Callers turn false into "forbidden" and a
// not-found error into "not found"; the engine never conflates the two.
package permission

// Engine evaluates access rules against the injected lookups.
type Engine struct {
	Users            UserLookup
	Chats            ChatLookup
	ChatMembers      ChatMemberLookup
	ChatMessages     ChatMessageLookup
	Communities      CommunityLookup
	CommunityMembers CommunityMemberLookup
	Posts            PostLookup
	PostComments     PostCommentLookup
	PrivateMessages  PrivateMessageLookup
	Invitations      CommunityInvitationLookup
	Friendships      FriendshipLookup
}
