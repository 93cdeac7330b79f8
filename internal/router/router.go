package router

import (
	"github.com/gin-gonic/gin"

	"Nexus_Social/internal/handler"
	"Nexus_Social/internal/middleware"
	"Nexus_Social/internal/permission"
	"Nexus_Social/internal/repository/mysql"
)

// NewEngine 用 MySQL 仓库装配权限引擎
func NewEngine() *permission.Engine {
	return &permission.Engine{
		Users:            &mysql.UserRepository{DB: mysql.DB},
		Chats:            &mysql.ChatRepository{DB: mysql.DB},
		ChatMembers:      &mysql.ChatMemberRepository{DB: mysql.DB},
		ChatMessages:     &mysql.ChatMessageRepository{DB: mysql.DB},
		Communities:      &mysql.CommunityRepository{DB: mysql.DB},
		CommunityMembers: &mysql.CommunityMemberRepository{DB: mysql.DB},
		Posts:            &mysql.PostRepository{DB: mysql.DB},
		PostComments:     &mysql.PostCommentRepository{DB: mysql.DB},
		PrivateMessages:  &mysql.PrivateMessageRepository{DB: mysql.DB},
		Invitations:      &mysql.InvitationRepository{DB: mysql.DB},
		Friendships:      &mysql.FriendshipRepository{DB: mysql.DB},
	}
}

func InitRouter(engine *permission.Engine) *gin.Engine {
	r := gin.Default()

	user := handler.NewUserHandler(engine)
	friendship := handler.NewFriendshipHandler(engine)
	chat := handler.NewChatHandler(engine)
	community := handler.NewCommunityHandler(engine)
	post := handler.NewPostHandler(engine)
	message := handler.NewMessageHandler(engine)

	// 免登录接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.Refresh)
	}

	// 登录态用户接口
	authGroup := r.Group("/api/user")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
		authGroup.PUT("/settings", user.UpdateSettings)
		authGroup.GET("/:id", user.Profile)
		authGroup.PUT("/:id/ban", user.SetBanned)
		authGroup.DELETE("/:id", user.Delete)
		authGroup.GET("/:id/posts", post.ListUserWall)
		authGroup.POST("/:id/posts", post.CreateUserPost)
	}

	// 好友相关接口
	friendGroup := r.Group("/api/friend")
	friendGroup.Use(middleware.AuthMiddleware())
	{
		friendGroup.POST("/request", friendship.SendRequest)
		friendGroup.POST("/request/:id/accept", friendship.Accept)
		friendGroup.DELETE("/request/:id", friendship.Decline)
		friendGroup.GET("/requests", friendship.ListRequests)
		friendGroup.GET("/list", friendship.ListFriends)
		friendGroup.DELETE("/:id", friendship.Unfriend)
	}

	// 群聊相关接口
	chatGroup := r.Group("/api/chat")
	chatGroup.Use(middleware.AuthMiddleware())
	{
		chatGroup.POST("/create", chat.Create)
		chatGroup.GET("/:id", chat.Get)
		chatGroup.PUT("/:id", chat.Update)
		chatGroup.DELETE("/:id", chat.Delete)
		chatGroup.POST("/:id/join", chat.Join)
		chatGroup.POST("/:id/invite", chat.Invite)
		chatGroup.POST("/:id/leave", chat.Leave)
		chatGroup.POST("/:id/messages", chat.SendMessage)
		chatGroup.GET("/:id/messages", chat.ListMessages)
		chatGroup.PUT("/message/:id", chat.EditMessage)
		chatGroup.DELETE("/message/:id", chat.DeleteMessage)
	}

	// 社区相关接口
	communityGroup := r.Group("/api/community")
	communityGroup.Use(middleware.AuthMiddleware())
	{
		communityGroup.POST("/create", community.Create)
		communityGroup.GET("/list", community.List)
		communityGroup.GET("/:id", community.Get)
		communityGroup.PUT("/:id", community.Update)
		communityGroup.DELETE("/:id", community.Delete)
		communityGroup.PUT("/:id/ban", community.SetBanned)
		communityGroup.POST("/:id/join", community.Join)
		communityGroup.POST("/:id/leave", community.Leave)
		communityGroup.PUT("/:id/role", community.SetMemberRole)
		communityGroup.POST("/:id/invite", community.Invite)
		communityGroup.GET("/:id/invitations", community.ListInvitations)
		communityGroup.GET("/:id/posts", post.ListCommunityWall)
		communityGroup.POST("/:id/posts", post.CreateCommunityPost)
	}

	// 社区邀请相关接口
	invitationGroup := r.Group("/api/invitation")
	invitationGroup.Use(middleware.AuthMiddleware())
	{
		invitationGroup.GET("/mine", community.ListMyInvitations)
		invitationGroup.POST("/:id/accept", community.AcceptInvitation)
		invitationGroup.DELETE("/:id", community.DeleteInvitation)
	}

	// 帖子相关接口
	postGroup := r.Group("/api/post")
	postGroup.Use(middleware.AuthMiddleware())
	{
		postGroup.GET("/:id", post.Get)
		postGroup.PUT("/:id", post.Update)
		postGroup.DELETE("/:id", post.Delete)
		postGroup.POST("/:id/comments", post.AddComment)
		postGroup.GET("/:id/comments", post.ListComments)
		postGroup.PUT("/comment/:id", post.UpdateComment)
		postGroup.DELETE("/comment/:id", post.DeleteComment)
	}

	// 私信相关接口
	messageGroup := r.Group("/api/message")
	messageGroup.Use(middleware.AuthMiddleware())
	{
		messageGroup.POST("/send", message.Send)
		messageGroup.GET("/unread", message.Unread)
		messageGroup.GET("/conversation/:id", message.ListConversation)
		messageGroup.GET("/:id", message.Read)
		messageGroup.PUT("/:id", message.Edit)
		messageGroup.DELETE("/:id", message.Delete)
	}

	return r
}
