package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"chirp/auth"
	"chirp/middleware"
	"chirp/notifications"
	"chirp/posts"
	"chirp/profile"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/postpic/*filepath", http.Dir("static/postpic"))
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler) {
	router.POST("/api/auth/signup", h.Signup)
	router.POST("/api/auth/signin", h.Signin)
	router.POST("/api/auth/signout", middleware.Authenticate(h.Signout))
	router.GET("/api/auth/me", middleware.Authenticate(h.Me))
}

func AddPostRoutes(router *httprouter.Router, h *posts.Handler) {
	router.GET("/api/posts", middleware.Authenticate(h.GetAllPosts))
	router.GET("/api/posts/following", middleware.Authenticate(h.GetFollowingPosts))
	router.GET("/api/posts/user/:username", middleware.Authenticate(h.GetUserPosts))
	router.GET("/api/posts/likes/:id", middleware.Authenticate(h.GetLikedPosts))
	router.POST("/api/posts", middleware.Authenticate(h.CreatePost))
	router.DELETE("/api/posts/:id", middleware.Authenticate(h.DeletePost))
	router.POST("/api/posts/comment/:postid", middleware.Authenticate(h.CommentOnPost))
	router.POST("/api/posts/like/:id", middleware.Authenticate(h.LikePost))
}

func AddNotificationRoutes(router *httprouter.Router, h *notifications.Handler) {
	router.GET("/api/notifications", middleware.Authenticate(h.GetNotifications))
	router.DELETE("/api/notifications", middleware.Authenticate(h.DeleteNotifications))
	router.DELETE("/api/notifications/:id", middleware.Authenticate(h.DeleteNotification))
}

func AddProfileRoutes(router *httprouter.Router, h *profile.Handler) {
	router.POST("/api/profile/follow/:id", middleware.Authenticate(h.Follow))
	router.POST("/api/profile/unfollow/:id", middleware.Authenticate(h.Unfollow))
}
