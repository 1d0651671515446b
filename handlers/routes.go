package handlers

import (
	"orchids/auth"
	"orchids/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Store is everything the API needs from the data service.
type Store interface {
	ProjectStore
	ChatStore
}

// Register mounts the API on r. Every /projects route runs AuthRequired.
func Register(r gin.IRouter, store Store, verifier auth.Verifier, log *zap.Logger) {
	r.GET("/health", HealthCheck)

	projects := r.Group("/projects", middleware.AuthRequired(verifier))
	projects.GET("", ListProjects(store, log))
	projects.POST("", CreateProject(store, log))
	projects.GET("/:id", GetProject(store, log))
	projects.PATCH("/:id", UpdateProject(store, log))
	projects.DELETE("/:id", DeleteProject(store, log))

	projects.GET("/:id/chats/:chatId", GetChat(store, log))
	projects.PATCH("/:id/chats/:chatId", UpdateChat(store, log))
	projects.DELETE("/:id/chats/:chatId", DeleteChat(store, log))
}
