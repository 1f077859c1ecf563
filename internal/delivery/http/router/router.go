// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/router/handler"
	"plateful/internal/delivery/http/session"
	"plateful/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CodeHandler    *handler.CodeHandler
	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	APIKeyHandler  *handler.APIKeyHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
	Sessions       *session.Store
}

// router holds all the handlers that need to be registered.
type router struct {
	codeHandler    *handler.CodeHandler
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	apiKeyHandler  *handler.APIKeyHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
	sessions       *session.Store
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		codeHandler:    params.CodeHandler,
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		apiKeyHandler:  params.APIKeyHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
		sessions:       params.Sessions,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Browser login flow, backed by server-side sessions
	authGroup := e.Group("/auth")
	authGroup.Use(r.sessions.Middleware())
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/verify", r.authHandler.Verify)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Code lifecycle API, called by the server itself with the system token
	codeGroup := e.Group("/api/code")
	codeGroup.Use(r.authMiddleware.JWTRequired)
	{
		codeGroup.POST("", r.codeHandler.RequestCode,
			r.authMiddleware.ScopeRequired("code:create"))
		codeGroup.POST("/verify", r.codeHandler.VerifyCode,
			r.authMiddleware.ScopeRequired("code:verify"))
		codeGroup.DELETE("", r.codeHandler.DeleteCode,
			r.authMiddleware.ScopeRequired("code:delete"))
	}

	// User provisioning API, also system-scoped
	userGroup := e.Group("/api/user")
	userGroup.Use(r.authMiddleware.JWTRequired)
	{
		userGroup.POST("", r.userHandler.GetOrCreateUser,
			r.authMiddleware.ScopeRequired("user:create"))
		userGroup.GET("/:sub", r.userHandler.GetUserBySub,
			r.authMiddleware.ScopeRequired("user:read"))
	}

	// Managed API keys, owner-scoped through the authenticated identity
	apiKeyGroup := e.Group("/api/apikey")
	apiKeyGroup.Use(r.sessions.Middleware())
	apiKeyGroup.Use(r.authMiddleware.JWTRequired)
	{
		apiKeyGroup.POST("", r.apiKeyHandler.CreateKey)
		apiKeyGroup.GET("", r.apiKeyHandler.ListKeys)
		apiKeyGroup.DELETE("/:id", r.apiKeyHandler.RevokeKey)
	}

	// Content CRUD, scope-guarded and ownership-guarded
	recipeGroup := e.Group("/api/recipe")
	recipeGroup.Use(r.sessions.Middleware())
	recipeGroup.Use(r.authMiddleware.JWTRequired)
	{
		recipeGroup.POST("", r.recipeHandler.CreateRecipe,
			r.authMiddleware.ScopeRequired("recipe:create"))
		recipeGroup.GET("", r.recipeHandler.ListRecipes,
			r.authMiddleware.ScopeRequired("recipe:read"))
		recipeGroup.GET("/:id", r.recipeHandler.GetRecipe,
			r.authMiddleware.ScopeRequired("recipe:read"),
			r.authMiddleware.OwnerRequired(repository.ContentRecipe))
		recipeGroup.PUT("/:id", r.recipeHandler.UpdateRecipe,
			r.authMiddleware.ScopeRequired("recipe:update"),
			r.authMiddleware.OwnerRequired(repository.ContentRecipe))
		recipeGroup.DELETE("/:id", r.recipeHandler.DeleteRecipe,
			r.authMiddleware.ScopeRequired("recipe:delete"),
			r.authMiddleware.OwnerRequired(repository.ContentRecipe))
	}

	categoryGroup := e.Group("/api/category")
	categoryGroup.Use(r.sessions.Middleware())
	categoryGroup.Use(r.authMiddleware.JWTRequired)
	{
		categoryGroup.POST("", r.recipeHandler.CreateCategory,
			r.authMiddleware.ScopeRequired("category:create"))
		categoryGroup.GET("", r.recipeHandler.ListCategories,
			r.authMiddleware.ScopeRequired("category:read"))
		categoryGroup.DELETE("/:id", r.recipeHandler.DeleteCategory,
			r.authMiddleware.ScopeRequired("category:delete"),
			r.authMiddleware.OwnerRequired(repository.ContentCategory))
	}
}
