package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/campusgram/campusgram/database"
	"github.com/campusgram/campusgram/helpers"
	"github.com/campusgram/campusgram/model"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// CreatePost stores a new post from the multipart form: owner,
// caption and the image blob written to the content store
func (h *Handler) CreatePost(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	if err := req.ParseMultipartForm(32 << 20); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInvalidBody,
		})
		return
	}

	username := req.FormValue("username")
	caption := req.FormValue("caption")

	if username == "" || caption == "" {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorMissingFields,
		})
		return
	}

	image, err := helpers.SaveFile(req, "postImage", h.UploadDir)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorUploading,
		})
		return
	}

	if image == "" {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorMissingFields,
		})
		return
	}

	post, err := h.Store.CreatePost(req.Context(), model.Post{
		Username:  username,
		Caption:   caption,
		PostImage: image,
	})
	if err != nil {
		log.Error().Err(err).Msg("unable to create post")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	w.WriteHeader(http.StatusCreated)
	jsonEncoder.Encode(post)
}

// AllPosts returns every post, newest first
func (h *Handler) AllPosts(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	posts, err := h.Store.AllPosts(req.Context())
	if err != nil {
		log.Error().Err(err).Msg("unable to list posts")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	jsonEncoder.Encode(posts)
}

// UserPosts returns every post owned by the named user
func (h *Handler) UserPosts(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	posts, err := h.Store.UserPosts(req.Context(), mux.Vars(req)["username"])
	if err != nil {
		log.Error().Err(err).Msg("unable to list user posts")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	jsonEncoder.Encode(posts)
}

// Feed returns the posts of every account the viewer follows
func (h *Handler) Feed(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	posts, err := h.Store.Feed(req.Context(), mux.Vars(req)["username"])
	if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorUserNotFound,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to build feed")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	jsonEncoder.Encode(posts)
}

// DeletePost removes the post with its embedded comments, then
// the stored image, best effort
func (h *Handler) DeletePost(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	post, err := h.Store.DeletePost(req.Context(), mux.Vars(req)["postId"])
	if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorPostNotFound,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to delete post")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	if post.PostImage != "" {
		if err := os.Remove(post.PostImage); err != nil {
			log.Warn().Err(err).Msgf("unable to remove %v", post.PostImage)
		}
	}

	jsonEncoder.Encode(model.RequestError{
		Error:   false,
		Message: OkPostDeleted,
	})
}
