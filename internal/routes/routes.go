package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"blogspace/internal/feedcache"
	"blogspace/internal/handlers"
	"blogspace/internal/middleware"
	"blogspace/internal/repository"
	"blogspace/services"
)

// Deps holds the shared dependencies injected into handlers.
type Deps struct {
	DB     *mongo.Database
	Cache  *feedcache.Cache
	Secret string
}

// Register wires repositories, services and handlers and mounts every
// route in one place.
func Register(app *fiber.App, d Deps) {
	posts := repository.NewMongoPostRepo(d.DB)
	groups := repository.NewMongoGroupRepo(d.DB)
	users := repository.NewMongoUserRepo(d.DB)
	follows := repository.NewMongoFollowRepo(d.DB)
	comments := repository.NewMongoCommentRepo(d.DB)

	feedSvc := services.NewFeedService(posts, groups, users, follows)
	followSvc := services.NewFollowService(users, follows)

	feedH := &handlers.FeedHandler{Feeds: feedSvc, Follows: followSvc, Cache: d.Cache}
	followH := &handlers.FollowHandler{Follows: followSvc}
	postH := &handlers.PostHandler{Posts: posts, Groups: groups, Users: users, Comments: comments}
	commentH := &handlers.CommentHandler{Comments: comments, Posts: posts, Users: users}
	groupH := &handlers.GroupHandler{Groups: groups}
	authH := &handlers.AuthHandler{Users: users, Secret: d.Secret}

	authed := middleware.RequireAuth()

	api := app.Group("/api")

	api.Post("/auth/signup", authH.Signup)
	api.Post("/auth/login", authH.Login)

	api.Get("/feed", feedH.Index)
	api.Get("/feed/following", authed, feedH.Following)

	api.Get("/groups", groupH.List)
	api.Get("/groups/:slug", feedH.Group)

	api.Get("/profiles/:username", feedH.Profile)
	api.Post("/profiles/:username/follow", authed, followH.Follow)
	api.Delete("/profiles/:username/follow", authed, followH.Unfollow)

	api.Post("/posts", authed, postH.Create)
	api.Get("/posts/:id", postH.Detail)
	api.Put("/posts/:id", authed, postH.Update)
	api.Delete("/posts/:id", authed, postH.Delete)

	api.Post("/posts/:id/comments", authed, commentH.Create)
	api.Get("/posts/:id/comments", commentH.List)
}
