package service

import (
	"context"
	"errors"

	"Nexus_Social/internal/model"
	"Nexus_Social/internal/permission"
	"Nexus_Social/internal/pkg"
	"Nexus_Social/internal/repository/mysql"
	"Nexus_Social/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo     *mysql.UserRepository
	sessions *redis.SessionRepository
	engine   *permission.Engine
}

func NewUserService(engine *permission.Engine) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: mysql.DB},
		sessions: &redis.SessionRepository{},
		engine:   engine,
	}
}

func (s *UserService) Register(username, password, email string) (*model.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, ErrInvalidArgument
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:             username,
		Password:             string(hash),
		Email:                email,
		PostsPublic:          true,
		AcceptingPrivateMsgs: true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*pkg.Pair, error) {
	user, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		return nil, errors.New("user not found")
	}
	if !user.Active() {
		return nil, ErrForbidden
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}

	token, err := pkg.GeneratePair(user.ID, user.SystemRole)
	if err != nil {
		return nil, err
	}
	// 将token写入redis，旧会话被顶下线
	if err := s.sessions.AddToken(ctx, user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	return s.sessions.DeleteToken(ctx, userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	return s.Logout(ctx, userID)
}

// Profile 带可见性门禁的用户查询
func (s *UserService) Profile(ctx context.Context, actorID, targetID uint64) (*model.User, error) {
	ok, err := s.engine.CanViewUserProfile(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.repo.UserByID(ctx, targetID)
}

func (s *UserService) UpdateSettings(ctx context.Context, userID uint64, postsPublic, acceptingPrivateMsgs bool) error {
	return s.repo.UpdateSettings(ctx, userID, postsPublic, acceptingPrivateMsgs)
}

// SetBanned 仅系统管理员可封禁/解禁
func (s *UserService) SetBanned(ctx context.Context, actorID, targetID uint64, banned bool) error {
	moderator, err := s.engine.IsUserSystemModerator(ctx, actorID)
	if err != nil {
		return err
	}
	if !moderator {
		return ErrForbidden
	}
	if actorID == targetID {
		return ErrSelfTarget
	}
	return s.repo.SetBanned(ctx, targetID, banned)
}

// Delete 本人或系统管理员可软删除账号
func (s *UserService) Delete(ctx context.Context, actorID, targetID uint64) error {
	if actorID != targetID {
		moderator, err := s.engine.IsUserSystemModerator(ctx, actorID)
		if err != nil {
			return err
		}
		if !moderator {
			return ErrForbidden
		}
	}
	if err := s.repo.SetDeleted(ctx, targetID, true); err != nil {
		return err
	}
	return s.sessions.DeleteToken(ctx, targetID)
}
