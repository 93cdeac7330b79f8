package permission

import (
	"context"

	"gorm.io/gorm"

	"Nexus_Social/internal/model"
)

// fakeStore backs every lookup interface with in-memory maps. Missing core
// entities fail with gorm.ErrRecordNotFound, exactly like the mysql
// repositories; absent community memberships and friendships are negative
// answers, not errors.
type fakeStore struct {
	users            map[uint64]*model.User
	chats            map[uint64]*model.Chat
	chatMembers      map[[2]uint64]bool
	chatMessages     map[uint64]*model.ChatMessage
	communities      map[uint64]*model.Community
	communityMembers map[[2]uint64]*model.CommunityMember
	posts            map[uint64]*model.Post
	comments         map[uint64]*model.PostComment
	privateMessages  map[uint64]*model.PrivateMessage
	invitations      map[uint64]*model.CommunityInvitation
	friendships      map[[2]uint64]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:            make(map[uint64]*model.User),
		chats:            make(map[uint64]*model.Chat),
		chatMembers:      make(map[[2]uint64]bool),
		chatMessages:     make(map[uint64]*model.ChatMessage),
		communities:      make(map[uint64]*model.Community),
		communityMembers: make(map[[2]uint64]*model.CommunityMember),
		posts:            make(map[uint64]*model.Post),
		comments:         make(map[uint64]*model.PostComment),
		privateMessages:  make(map[uint64]*model.PrivateMessage),
		invitations:      make(map[uint64]*model.CommunityInvitation),
		friendships:      make(map[[2]uint64]bool),
	}
}

func (s *fakeStore) UserByID(_ context.Context, id uint64) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) ChatByID(_ context.Context, id uint64) (*model.Chat, error) {
	if c, ok := s.chats[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) ChatMemberExists(_ context.Context, chatID, userID uint64) (bool, error) {
	return s.chatMembers[[2]uint64{chatID, userID}], nil
}

func (s *fakeStore) ChatMessageByID(_ context.Context, id uint64) (*model.ChatMessage, error) {
	if m, ok := s.chatMessages[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) CommunityByID(_ context.Context, id uint64) (*model.Community, error) {
	if c, ok := s.communities[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) CommunityMemberByID(_ context.Context, communityID, userID uint64) (*model.CommunityMember, error) {
	return s.communityMembers[[2]uint64{communityID, userID}], nil
}

func (s *fakeStore) PostByID(_ context.Context, id uint64) (*model.Post, error) {
	if p, ok := s.posts[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) PostCommentByID(_ context.Context, id uint64) (*model.PostComment, error) {
	if c, ok := s.comments[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) PrivateMessageByID(_ context.Context, id uint64) (*model.PrivateMessage, error) {
	if m, ok := s.privateMessages[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) InvitationByID(_ context.Context, id uint64) (*model.CommunityInvitation, error) {
	if inv, ok := s.invitations[id]; ok {
		return inv, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) FriendshipExists(_ context.Context, userA, userB uint64) (bool, error) {
	return s.friendships[[2]uint64{userA, userB}] || s.friendships[[2]uint64{userB, userA}], nil
}

func (s *fakeStore) addUser(u model.User) *fakeStore {
	cp := u
	s.users[u.ID] = &cp
	return s
}

func (s *fakeStore) addChat(c model.Chat) *fakeStore {
	cp := c
	s.chats[c.ID] = &cp
	return s
}

func (s *fakeStore) addChatMember(chatID, userID uint64) *fakeStore {
	s.chatMembers[[2]uint64{chatID, userID}] = true
	return s
}

func (s *fakeStore) addCommunity(c model.Community) *fakeStore {
	cp := c
	s.communities[c.ID] = &cp
	return s
}

func (s *fakeStore) addCommunityMember(communityID, userID uint64, role int) *fakeStore {
	s.communityMembers[[2]uint64{communityID, userID}] = &model.CommunityMember{
		CommunityID: communityID,
		UserID:      userID,
		Role:        role,
	}
	return s
}

func (s *fakeStore) addFriendship(a, b uint64) *fakeStore {
	s.friendships[[2]uint64{a, b}] = true
	return s
}

func newEngine(s *fakeStore) *Engine {
	return &Engine{
		Users:            s,
		Chats:            s,
		ChatMembers:      s,
		ChatMessages:     s,
		Communities:      s,
		CommunityMembers: s,
		Posts:            s,
		PostComments:     s,
		PrivateMessages:  s,
		Invitations:      s,
		Friendships:      s,
	}
}

func uptr(v uint64) *uint64 { return &v }
