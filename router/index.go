package router

import (
	"fmt"
	"net/http"
)

// Every possible error list
const (
	ErrorInvalidBody         = "Invalid body"
	ErrorMissingFields       = "Required fields are empty"
	ErrorInvalidCredentials  = "Invalid user credentials"
	ErrorUserExists          = "User already exists"
	ErrorUserNotFound        = "User not found"
	ErrorPostNotFound        = "Post not found"
	ErrorSelfFollow          = "Cannot follow/unfollow yourself"
	ErrorAlreadyFollowing    = "Already following this user"
	ErrorAlreadyLiked        = "Post already liked"
	ErrorNotLiked            = "Post not liked"
	ErrorUploading           = "Error occurs when uploading content"
	ErrorInternalServerError = "Internal server error"
)

// Every OK message reponse
const (
	Ok              = "OK"
	OkUserCreated   = "User created successfully"
	OkLoggedIn      = "Login successful"
	OkPostCreated   = "Post created successfully"
	OkPostDeleted   = "Post deleted successfully"
	OkProfileEdited = "Profile updated successfully"
	OkFollowed      = "Followed successfully"
	OkUnfollowed    = "Unfollowed successfully"
)

func Index(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "OK")
}
