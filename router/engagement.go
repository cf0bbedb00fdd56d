package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusgram/campusgram/database"
	"github.com/campusgram/campusgram/helpers"
	"github.com/campusgram/campusgram/model"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Like adds the caller to the post's like set. Liking twice is
// an error, not a toggle: the caller must branch to unlike.
func (h *Handler) Like(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	defer req.Body.Close()
	var body model.LikeBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Username == "" {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInvalidBody,
		})
		return
	}

	id := mux.Vars(req)["postId"]
	likes, err := h.Store.Like(req.Context(), id, body.Username)
	if errors.Is(err, database.ErrAlreadyLiked) {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorAlreadyLiked,
		})
		return
	} else if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorPostNotFound,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to like post")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	helpers.PublishEvent(model.Message{
		Type: "like",
		From: body.Username,
		Post: id,
	})

	jsonEncoder.Encode(struct {
		Likes []string `json:"likes"`
	}{Likes: likes})
}

// Unlike removes the caller from the post's like set; removing
// a like that was never given is an error
func (h *Handler) Unlike(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	defer req.Body.Close()
	var body model.LikeBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Username == "" {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInvalidBody,
		})
		return
	}

	likes, err := h.Store.Unlike(req.Context(), mux.Vars(req)["postId"], body.Username)
	if errors.Is(err, database.ErrNotLiked) {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorNotLiked,
		})
		return
	} else if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorPostNotFound,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to unlike post")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	jsonEncoder.Encode(struct {
		Likes []string `json:"likes"`
	}{Likes: likes})
}

// Comment appends to the post's comment list and returns the
// updated sequence. Empty text is accepted, historical behavior.
func (h *Handler) Comment(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	defer req.Body.Close()
	var body model.CommentBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Username == "" {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInvalidBody,
		})
		return
	}

	id := mux.Vars(req)["postId"]
	comments, err := h.Store.Comment(req.Context(), id, body.Username, body.Comment)
	if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorPostNotFound,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to comment post")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	helpers.PublishEvent(model.Message{
		Type: "comment",
		From: body.Username,
		Post: id,
	})

	jsonEncoder.Encode(struct {
		Comments []model.Comment `json:"comments"`
	}{Comments: comments})
}
