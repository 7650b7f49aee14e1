package router

import (
	"fmt"
	"log/slog"
	"net/http"

	"Community_API/internal/handler"
	"Community_API/internal/middleware"
	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
)

// Deps 路由需要的服务，由 main 组装
type Deps struct {
	Auth         *service.AuthService
	Access       *service.AccessService
	Role         *service.RoleService
	Community    *service.CommunityService
	Member       *service.MemberService
	CookieSecure bool
	Logger       *slog.Logger
}

func InitRouter(d Deps) *gin.Engine {
	pkg.RegisterValidators()
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(d.Logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		pkg.Fail(c, fmt.Errorf("panic: %v", recovered))
	}))

	auth := handler.NewAuthHandler(d.Auth, d.CookieSecure)
	role := handler.NewRoleHandler(d.Role)
	community := handler.NewCommunityHandler(d.Community)
	member := handler.NewMemberHandler(d.Member)

	requireAuth := middleware.AuthMiddleware(d.Auth)
	requireManager := middleware.RequireMemberManager(d.Access)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")

	// 用户相关接口
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignUp)
		authGroup.POST("/signin", auth.SignIn)
		authGroup.GET("/me", requireAuth, auth.Me)
		authGroup.POST("/signout", requireAuth, auth.SignOut)
	}

	// 角色相关接口
	roleGroup := v1.Group("/role")
	roleGroup.Use(requireAuth)
	{
		roleGroup.POST("", role.Create)
		roleGroup.GET("", role.List)
	}

	// 社区相关接口，列表公开
	communityGroup := v1.Group("/community")
	{
		communityGroup.GET("", community.List)
		communityGroup.POST("", requireAuth, community.Create)
		communityGroup.GET("/:id/members", community.Members)
		communityGroup.GET("/me/owner", requireAuth, community.Owned)
		communityGroup.GET("/me/member", requireAuth, community.Joined)
	}

	// 成员管理，需要管理员或版主
	memberGroup := v1.Group("/member")
	memberGroup.Use(requireAuth, requireManager)
	{
		memberGroup.POST("", member.Add)
		memberGroup.DELETE("/:id", member.Remove)
	}

	return r
}
