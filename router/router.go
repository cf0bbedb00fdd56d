package router

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/campusgram/campusgram/database"
	"github.com/gorilla/mux"
)

// Cache keeps short-lived denormalized values out of the storage
// hot path; database.Cache is the memcached implementation.
type Cache interface {
	Set(key string, value []byte, seconds int32)
	Get(key string) ([]byte, bool)
	Delete(key string)
}

// Handler carries the process-wide collaborators every route
// needs, injected once at startup.
type Handler struct {
	Store     database.Store
	Cache     Cache
	UploadDir string
}

// New builds the route table
func New(h *Handler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", Index).Methods(http.MethodGet)

	router.HandleFunc("/receive-data", h.Signup).Methods(http.MethodPost)
	router.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	router.HandleFunc("/create-post", h.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/all-posts", h.AllPosts).Methods(http.MethodGet)
	router.HandleFunc("/user-posts/{username}", h.UserPosts).Methods(http.MethodGet)
	router.HandleFunc("/feed/{username}", h.Feed).Methods(http.MethodGet)
	router.HandleFunc("/posts/{postId}", h.DeletePost).Methods(http.MethodDelete)

	router.HandleFunc("/like-post/{postId}", h.Like).Methods(http.MethodPost)
	router.HandleFunc("/unlike-post/{postId}", h.Unlike).Methods(http.MethodPost)
	router.HandleFunc("/comment-post/{postId}", h.Comment).Methods(http.MethodPost)

	router.HandleFunc("/profile/{username}", h.Profile).Methods(http.MethodGet)
	router.HandleFunc("/edit-profile/{username}", h.EditProfile).Methods(http.MethodPut)
	router.HandleFunc("/follow/{username}", h.Follow).Methods(http.MethodPost)
	router.HandleFunc("/unfollow/{username}", h.Unfollow).Methods(http.MethodPost)
	router.HandleFunc("/follow-count/{username}", h.FollowCount).Methods(http.MethodGet)

	// Uploaded media is served statically under the same prefix
	// the stored reference paths carry
	prefix := "/" + strings.Trim(filepath.ToSlash(h.UploadDir), "/") + "/"
	router.PathPrefix(prefix).Handler(http.StripPrefix(prefix,
		http.FileServer(http.Dir(h.UploadDir)))).Methods(http.MethodGet)

	return router
}

// CORS mirrors the permissive browser policy the reference
// deployment fronts the API with
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}
