package database

import (
	"context"
	"time"

	"github.com/campusgram/campusgram/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection = "users"
	postsCollection = "posts"
)

// Mongo implements Store over the Users and Posts collections.
type Mongo struct {
	client *mongo.Client
	users  *mongo.Collection
	posts  *mongo.Collection
}

// Connect opens the client, pings the deployment and prepares
// the unique indexes on username and email.
func Connect(ctx context.Context, uri string, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	db := &Mongo{
		client: client,
		users:  client.Database(database).Collection(usersCollection),
		posts:  client.Database(database).Collection(postsCollection),
	}

	_, err = db.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mail", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	return db, nil
}

// Disconnect releases the client
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// withTransaction runs fn inside a session, so a two-document
// update commits or aborts as one logical write.
func (m *Mongo) withTransaction(ctx context.Context, fn func(mongo.SessionContext) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})

	return err
}

// CreateUser stores a new account with empty follow sets.
// A taken username or email yields ErrConflict.
func (m *Mongo) CreateUser(ctx context.Context, user model.User) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"name": user.Username},
		bson.M{"mail": user.Email},
	}}

	err := m.users.FindOne(ctx, filter).Err()
	if err == nil {
		return ErrConflict
	} else if err != mongo.ErrNoDocuments {
		return err
	}

	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}

	_, err = m.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}

	return err
}

// UserByName returns the full account document
func (m *Mongo) UserByName(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := m.users.FindOne(ctx, bson.M{"name": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return model.User{}, ErrNotFound
	}

	return user, err
}

// EditProfile applies a partial update on bio and profile picture
func (m *Mongo) EditProfile(ctx context.Context, username string, bio *string, profilePic *string) error {
	set := bson.M{}
	if bio != nil {
		set["bio"] = *bio
	}
	if profilePic != nil {
		set["profilePic"] = *profilePic
	}

	if len(set) == 0 {
		// Nothing to change, still report a missing user
		_, err := m.UserByName(ctx, username)
		return err
	}

	result, err := m.users.UpdateOne(ctx, bson.M{"name": username}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// Follow adds target to follower.following and follower to
// target.followers inside one transaction
func (m *Mongo) Follow(ctx context.Context, follower string, target string) error {
	if follower == target {
		return ErrInvalidOperation
	}

	if err := m.users.FindOne(ctx, bson.M{"name": target}).Err(); err == mongo.ErrNoDocuments {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	err := m.users.FindOne(ctx, bson.M{"name": follower, "following": target}).Err()
	if err == nil {
		return ErrAlreadyFollowing
	} else if err != mongo.ErrNoDocuments {
		return err
	}

	return m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		result, err := m.users.UpdateOne(sc,
			bson.M{"name": follower},
			bson.M{"$addToSet": bson.M{"following": target}})
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return ErrNotFound
		}

		_, err = m.users.UpdateOne(sc,
			bson.M{"name": target},
			bson.M{"$addToSet": bson.M{"followers": follower}})
		return err
	})
}

// Unfollow removes the edge from both sides where present;
// removing a non-existent edge is not an error
func (m *Mongo) Unfollow(ctx context.Context, follower string, target string) error {
	return m.withTransaction(ctx, func(sc mongo.SessionContext) error {
		_, err := m.users.UpdateOne(sc,
			bson.M{"name": follower},
			bson.M{"$pull": bson.M{"following": target}})
		if err != nil {
			return err
		}

		_, err = m.users.UpdateOne(sc,
			bson.M{"name": target},
			bson.M{"$pull": bson.M{"followers": follower}})
		return err
	})
}

// FollowCounts returns both counters of a user
func (m *Mongo) FollowCounts(ctx context.Context, username string) (model.FollowCount, error) {
	user, err := m.UserByName(ctx, username)
	if err != nil {
		return model.FollowCount{}, err
	}

	return model.FollowCount{
		FollowingCount: len(user.Following),
		FollowersCount: len(user.Followers),
	}, nil
}

// CreatePost stores a new post with an empty like set and
// comment list
func (m *Mongo) CreatePost(ctx context.Context, post model.Post) (model.Post, error) {
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

	_, err := m.posts.InsertOne(ctx, post)
	return post, err
}

// DeletePost removes the post and its embedded comments in one
// write, and returns the deleted document for media cleanup
func (m *Mongo) DeletePost(ctx context.Context, id string) (model.Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Post{}, ErrNotFound
	}

	var post model.Post
	err = m.posts.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return model.Post{}, ErrNotFound
	}

	return post, err
}

// AllPosts returns every post, newest first
func (m *Mongo) AllPosts(ctx context.Context) ([]model.Post, error) {
	return m.findPosts(ctx, bson.M{})
}

// UserPosts returns every post owned by username
func (m *Mongo) UserPosts(ctx context.Context, username string) ([]model.Post, error) {
	return m.findPosts(ctx, bson.M{"username": username})
}

// Feed returns the posts of every account the viewer follows
func (m *Mongo) Feed(ctx context.Context, viewer string) ([]model.Post, error) {
	user, err := m.UserByName(ctx, viewer)
	if err != nil {
		return nil, err
	}

	if len(user.Following) == 0 {
		return []model.Post{}, nil
	}

	return m.findPosts(ctx, bson.M{"username": bson.M{"$in": user.Following}})
}

// findPosts sorts by creation time descending; _id keeps ties in
// insertion order
func (m *Mongo) findPosts(ctx context.Context, filter bson.M) ([]model.Post, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: 1},
	})

	cursor, err := m.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// Like adds username to the like set only if absent, and returns
// the resulting set so the caller can render an authoritative
// count without a second query
func (m *Mongo) Like(ctx context.Context, id string, username string) ([]string, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post model.Post
	err = m.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "likes": bson.M{"$ne": username}},
		bson.M{"$addToSet": bson.M{"likes": username}},
		opts).Decode(&post)
	if err == mongo.ErrNoDocuments {
		// The post is missing or the membership guard failed
		if err := m.posts.FindOne(ctx, bson.M{"_id": objectID}).Err(); err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		} else if err != nil {
			return nil, err
		}
		return nil, ErrAlreadyLiked
	} else if err != nil {
		return nil, err
	}

	return post.Likes, nil
}

// Unlike removes username from the like set only if present
func (m *Mongo) Unlike(ctx context.Context, id string, username string) ([]string, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post model.Post
	err = m.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "likes": username},
		bson.M{"$pull": bson.M{"likes": username}},
		opts).Decode(&post)
	if err == mongo.ErrNoDocuments {
		if err := m.posts.FindOne(ctx, bson.M{"_id": objectID}).Err(); err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		} else if err != nil {
			return nil, err
		}
		return nil, ErrNotLiked
	} else if err != nil {
		return nil, err
	}

	if post.Likes == nil {
		post.Likes = []string{}
	}

	return post.Likes, nil
}

// Comment appends to the post's comment list and returns the
// updated sequence
func (m *Mongo) Comment(ctx context.Context, id string, username string, text string) ([]model.Comment, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	comment := model.Comment{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Comment:   text,
		CreatedAt: time.Now().UTC(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post model.Post
	err = m.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$push": bson.M{"comments": comment}},
		opts).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return post.Comments, nil
}
