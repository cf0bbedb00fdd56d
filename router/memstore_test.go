package router

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campusgram/campusgram/database"
	"github.com/campusgram/campusgram/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore implements database.Store in memory with the same
// semantics as the mongo implementation, so the handlers can be
// exercised without a deployment.
type memStore struct {
	mu    sync.Mutex
	users map[string]*model.User
	posts []*model.Post
}

func newMemStore() *memStore {
	return &memStore{users: map[string]*model.User{}}
}

// memCache implements Cache in memory, expirations ignored
type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (c *memCache) Set(key string, value []byte, _ int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

func (c *memCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.items[key]
	return value, ok
}

func (c *memCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	result := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			result = append(result, v)
		}
	}
	return result
}

func (m *memStore) CreateUser(_ context.Context, user model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Username]; ok {
		return database.ErrConflict
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return database.ErrConflict
		}
	}

	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}

	m.users[user.Username] = &user
	return nil
}

func (m *memStore) UserByName(_ context.Context, username string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return model.User{}, database.ErrNotFound
	}
	return *user, nil
}

func (m *memStore) EditProfile(_ context.Context, username string, bio *string, profilePic *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return database.ErrNotFound
	}
	if bio != nil {
		user.Bio = *bio
	}
	if profilePic != nil {
		user.ProfilePic = *profilePic
	}
	return nil
}

func (m *memStore) Follow(_ context.Context, follower string, target string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if follower == target {
		return database.ErrInvalidOperation
	}

	from, ok := m.users[follower]
	if !ok {
		return database.ErrNotFound
	}
	to, ok := m.users[target]
	if !ok {
		return database.ErrNotFound
	}

	if contains(from.Following, target) {
		return database.ErrAlreadyFollowing
	}

	from.Following = append(from.Following, target)
	to.Followers = append(to.Followers, follower)
	return nil
}

func (m *memStore) Unfollow(_ context.Context, follower string, target string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if from, ok := m.users[follower]; ok {
		from.Following = remove(from.Following, target)
	}
	if to, ok := m.users[target]; ok {
		to.Followers = remove(to.Followers, follower)
	}
	return nil
}

func (m *memStore) FollowCounts(_ context.Context, username string) (model.FollowCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return model.FollowCount{}, database.ErrNotFound
	}
	return model.FollowCount{
		FollowingCount: len(user.Following),
		FollowersCount: len(user.Followers),
	}, nil
}

func (m *memStore) CreatePost(_ context.Context, post model.Post) (model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}

	m.posts = append(m.posts, &post)
	return post, nil
}

func (m *memStore) DeletePost(_ context.Context, id string) (model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, post := range m.posts {
		if post.ID.Hex() == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return *post, nil
		}
	}
	return model.Post{}, database.ErrNotFound
}

// sorted returns matching posts newest first, ties kept in
// insertion order
func (m *memStore) sorted(match func(*model.Post) bool) []model.Post {
	posts := make([]model.Post, 0)
	for _, post := range m.posts {
		if match(post) {
			posts = append(posts, *post)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func (m *memStore) AllPosts(_ context.Context) ([]model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sorted(func(*model.Post) bool { return true }), nil
}

func (m *memStore) UserPosts(_ context.Context, username string) ([]model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sorted(func(p *model.Post) bool { return p.Username == username }), nil
}

func (m *memStore) Feed(_ context.Context, viewer string) ([]model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[viewer]
	if !ok {
		return nil, database.ErrNotFound
	}

	return m.sorted(func(p *model.Post) bool { return contains(user.Following, p.Username) }), nil
}

func (m *memStore) Like(_ context.Context, id string, username string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, post := range m.posts {
		if post.ID.Hex() != id {
			continue
		}
		if contains(post.Likes, username) {
			return nil, database.ErrAlreadyLiked
		}
		post.Likes = append(post.Likes, username)
		return append([]string{}, post.Likes...), nil
	}
	return nil, database.ErrNotFound
}

func (m *memStore) Unlike(_ context.Context, id string, username string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, post := range m.posts {
		if post.ID.Hex() != id {
			continue
		}
		if !contains(post.Likes, username) {
			return nil, database.ErrNotLiked
		}
		post.Likes = remove(post.Likes, username)
		return append([]string{}, post.Likes...), nil
	}
	return nil, database.ErrNotFound
}

func (m *memStore) Comment(_ context.Context, id string, username string, text string) ([]model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, post := range m.posts {
		if post.ID.Hex() != id {
			continue
		}
		post.Comments = append(post.Comments, model.Comment{
			ID:        primitive.NewObjectID(),
			Username:  username,
			Comment:   text,
			CreatedAt: time.Now().UTC(),
		})
		return append([]model.Comment{}, post.Comments...), nil
	}
	return nil, database.ErrNotFound
}
