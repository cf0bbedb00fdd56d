package model

// LoginBody define the struct of the login body
type LoginBody struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// LikeBody define the body of like and unlike routes
type LikeBody struct {
	Username string `json:"username"`
}

// CommentBody define the body of the comment route
type CommentBody struct {
	Username string `json:"username"`
	Comment  string `json:"comment"`
}

// FollowBody define the body of follow and unfollow routes
type FollowBody struct {
	CurrentUser string `json:"currentUser"`
}
