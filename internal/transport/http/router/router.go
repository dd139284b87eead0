package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JamesLawwd/BITSA/internal/core/auth"
	"github.com/JamesLawwd/BITSA/internal/core/cache"
	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/internal/service"
	"github.com/JamesLawwd/BITSA/internal/transport/http/handler"
	mdw "github.com/JamesLawwd/BITSA/internal/transport/http/middleware"
)

type Deps struct {
	Log    *zap.Logger
	DB     *gorm.DB
	JWT    *auth.JWTer
	Cache  *cache.Cache // optional
	Secure bool         // Secure session cookies
}

// New wires repositories, services and handlers onto one engine under /api.
func New(d Deps) *gin.Engine {
	users := repo.NewUserRepo(d.DB)
	posts := repo.NewBlogRepo(d.DB)
	events := repo.NewEventRepo(d.DB)
	galleries := repo.NewGalleryRepo(d.DB)
	contacts := repo.NewContactRepo(d.DB)

	authH := handler.NewAuthHandler(service.NewAuthService(users, d.JWT), d.JWT.TTL, d.Secure)
	userH := handler.NewUserHandler(service.NewUserService(users))
	blogH := handler.NewBlogHandler(service.NewBlogService(posts))
	eventH := handler.NewEventHandler(service.NewEventService(events))
	galleryH := handler.NewGalleryHandler(service.NewGalleryService(galleries))
	contactH := handler.NewContactHandler(service.NewContactService(contacts))
	adminH := handler.NewAdminHandler(service.NewAdminService(users, posts, events, galleries, contacts, d.Cache))

	r := gin.New()
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.RateLimitPerIP(50, 100),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(d.Log),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	authed := mdw.Auth(d.JWT, users)
	adminOnly := mdw.RequireRole(domain.RoleAdmin)

	ar := api.Group("/auth")
	{
		ar.POST("/register", authH.Register)
		ar.POST("/login", authH.Login)
		ar.GET("/logout", authH.Logout)
		ar.GET("/me", authed, authH.Me)
	}

	ur := api.Group("/users", authed)
	{
		ur.GET("/profile", userH.GetProfile)
		ur.PUT("/profile", userH.UpdateProfile)
		ur.GET("/all", adminOnly, userH.ListAll)
	}

	br := api.Group("/blog")
	{
		br.GET("", blogH.List)
		br.GET("/:id", blogH.Get)
		br.POST("", authed, blogH.Create)
		br.PUT("/:id", authed, blogH.Update)
		br.DELETE("/:id", authed, blogH.Delete)
	}

	er := api.Group("/events")
	{
		er.GET("", eventH.List)
		er.GET("/:id", eventH.Get)
		er.POST("", authed, eventH.Create)
		er.PUT("/:id", authed, eventH.Update)
		er.DELETE("/:id", authed, eventH.Delete)
		er.POST("/:id/register", authed, eventH.Register)
	}

	gr := api.Group("/gallery")
	{
		gr.GET("", galleryH.List)
		gr.GET("/:id", galleryH.Get)
		gr.POST("", authed, galleryH.Create)
		gr.PUT("/:id", authed, galleryH.Update)
		gr.DELETE("/:id", authed, galleryH.Delete)
	}

	cr := api.Group("/contact")
	{
		cr.GET("/info", contactH.Info)
		cr.POST("", contactH.Create)
		cr.GET("", authed, adminOnly, contactH.List)
		cr.GET("/:id", authed, adminOnly, contactH.Get)
		cr.PUT("/:id", authed, adminOnly, contactH.Update)
	}

	adm := api.Group("/admin", authed, adminOnly)
	{
		adm.GET("/stats", adminH.Stats)
		adm.PUT("/users/:id/role", adminH.UpdateUserRole)
		adm.DELETE("/users/:id", adminH.DeleteUser)
	}

	return r
}
