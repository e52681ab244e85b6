package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edublog/blog-service/internal/auth"
	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/repositories"
	"github.com/edublog/blog-service/internal/services"
	"github.com/edublog/blog-service/internal/utils"
)

const apiVersion = "0.1.1"

type HandlerManager struct {
	authHandler    *AuthHandler
	userHandler    *UserHandler
	postHandler    *PostHandler
	authMiddleware *JWTAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenService,
	userRepo repositories.UserRepository,
	logger utils.Logger,
	development bool,
) *HandlerManager {
	return &HandlerManager{
		authHandler:    NewAuthHandler(serviceManager.Auth(), logger, development),
		userHandler:    NewUserHandler(serviceManager.User(), serviceManager.Report(), logger, development),
		postHandler:    NewPostHandler(serviceManager.Post(), serviceManager.Report(), logger, development),
		authMiddleware: NewJWTAuthMiddleware(tokens, userRepo),
	}
}

// SetupRoutes sets up all API routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	authRequired := hm.authMiddleware.AuthMiddleware()
	professorOnly := hm.authMiddleware.RequireUserType(models.UserTypeProfessor)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HomeResponse{
			Message: "Bem-vindo à Home Page do Blog Educacional!",
			Version: apiVersion,
			Status:  "online",
		})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", hm.authHandler.Login)
	}

	users := router.Group("/users")
	{
		users.POST("/register", hm.userHandler.Register)

		users.GET("", authRequired, hm.userHandler.ListUsers)
		users.GET("/export", authRequired, professorOnly, hm.userHandler.ExportUsers)
		users.GET("/:id", authRequired, hm.userHandler.GetUser)
		users.PUT("/:id", authRequired, hm.userHandler.UpdateUser)
		users.DELETE("/:id", authRequired, hm.userHandler.DeleteUser)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", hm.postHandler.ListPosts)
		posts.GET("/search", hm.postHandler.SearchPosts)
		posts.GET("/export", authRequired, professorOnly, hm.postHandler.ExportPosts)
		posts.GET("/:id", hm.postHandler.GetPost)

		posts.POST("", authRequired, professorOnly, hm.postHandler.CreatePost)
		posts.PUT("/:id", authRequired, professorOnly, hm.postHandler.UpdatePost)
		posts.DELETE("/:id", authRequired, professorOnly, hm.postHandler.DeletePost)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "blog-service",
		})
	})
}
