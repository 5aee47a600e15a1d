// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the root of every versioned route.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	SubscriptionHandler *handler.SubscriptionHandler
	PlaylistHandler     *handler.PlaylistHandler
	MediaHandler        *handler.MediaHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	subscriptionHandler *handler.SubscriptionHandler
	playlistHandler     *handler.PlaylistHandler
	mediaHandler        *handler.MediaHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		subscriptionHandler: params.SubscriptionHandler,
		playlistHandler:     params.PlaylistHandler,
		mediaHandler:        params.MediaHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Stored avatars and covers, served when the blob backend has no public host
	e.GET("/media/*", r.mediaHandler.Serve)

	apiV1 := e.Group(APIPrefix)
	apiV1.GET("/healthcheck", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate

	// Public session routes
	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.POST("/refresh-token", r.userHandler.RefreshToken)
	}

	// Routes that require a valid access token
	{
		usersGroup.POST("/logout", r.userHandler.Logout, authenticate)
		usersGroup.POST("/change-password", r.userHandler.ChangePassword, authenticate)
		usersGroup.GET("/current-user", r.userHandler.GetCurrentUser, authenticate)
		usersGroup.PATCH("/update-account", r.userHandler.UpdateAccount, authenticate)
		usersGroup.PATCH("/avatar", r.userHandler.UpdateAvatar, authenticate)
		usersGroup.PATCH("/cover-image", r.userHandler.UpdateCoverImage, authenticate)
		usersGroup.GET("/channel/:username", r.userHandler.GetChannelProfile, authenticate)
		usersGroup.GET("/channel/:username/qrcode", r.userHandler.GetChannelQRCode, authenticate)
		usersGroup.GET("/watch-history", r.userHandler.GetWatchHistory, authenticate)
		usersGroup.POST("/watch-history/:videoId", r.userHandler.AddToWatchHistory, authenticate)
	}

	subscriptionsGroup := apiV1.Group("/subscriptions", authenticate)
	{
		subscriptionsGroup.POST("/c/:channelId", r.subscriptionHandler.ToggleSubscription)
		subscriptionsGroup.POST("/qr", r.subscriptionHandler.ProcessQRSubscription)
	}

	playlistsGroup := apiV1.Group("/playlists", authenticate)
	{
		playlistsGroup.POST("", r.playlistHandler.Create)
		playlistsGroup.GET("/:playlistId", r.playlistHandler.Get)
		playlistsGroup.PATCH("/:playlistId", r.playlistHandler.Update)
		playlistsGroup.DELETE("/:playlistId", r.playlistHandler.Delete)
		playlistsGroup.GET("/user/:userId", r.playlistHandler.ListByUser)
		playlistsGroup.PATCH("/add/:videoId/:playlistId", r.playlistHandler.AddVideo)
		playlistsGroup.PATCH("/remove/:videoId/:playlistId", r.playlistHandler.RemoveVideo)
	}
}
