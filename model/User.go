package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a document of the Users collection.
// Field names follow the historical schema.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username   string             `bson:"name" json:"username"`
	Password   string             `bson:"pass" json:"-"`
	Email      string             `bson:"mail" json:"email"`
	Bio        string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePic string             `bson:"profilePic,omitempty" json:"profilePic,omitempty"`
	Followers  []string           `bson:"followers" json:"followers"`
	Following  []string           `bson:"following" json:"following"`
}

// Profile is the resolved view of an account, with both
// follow lists recomputed on every read
type Profile struct {
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Bio        string   `json:"bio,omitempty"`
	ProfilePic string   `json:"profilePic,omitempty"`
	Followers  []string `json:"followers"`
	Following  []string `json:"following"`
}

// FollowCount carries both counters of a user
type FollowCount struct {
	FollowingCount int `json:"followingCount"`
	FollowersCount int `json:"followersCount"`
}
