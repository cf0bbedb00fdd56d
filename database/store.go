package database

import (
	"context"

	"github.com/campusgram/campusgram/model"
)

// Store is the storage surface consumed by the HTTP handlers.
// The concrete handle is created once at startup and injected,
// never referenced as an ambient global.
type Store interface {
	CreateUser(ctx context.Context, user model.User) error
	UserByName(ctx context.Context, username string) (model.User, error)
	EditProfile(ctx context.Context, username string, bio *string, profilePic *string) error

	Follow(ctx context.Context, follower string, target string) error
	Unfollow(ctx context.Context, follower string, target string) error
	FollowCounts(ctx context.Context, username string) (model.FollowCount, error)

	CreatePost(ctx context.Context, post model.Post) (model.Post, error)
	DeletePost(ctx context.Context, id string) (model.Post, error)
	AllPosts(ctx context.Context) ([]model.Post, error)
	UserPosts(ctx context.Context, username string) ([]model.Post, error)
	Feed(ctx context.Context, viewer string) ([]model.Post, error)

	Like(ctx context.Context, id string, username string) ([]string, error)
	Unlike(ctx context.Context, id string, username string) ([]string, error)
	Comment(ctx context.Context, id string, username string, text string) ([]model.Comment, error)
}
