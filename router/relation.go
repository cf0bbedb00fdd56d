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

const followCountKey = "follow-count-"

// Follow creates the edge on both sides: target goes into the
// caller's following, the caller into the target's followers
func (h *Handler) Follow(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	defer req.Body.Close()
	var body model.FollowBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.CurrentUser == "" {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInvalidBody,
		})
		return
	}

	target := mux.Vars(req)["username"]
	err := h.Store.Follow(req.Context(), body.CurrentUser, target)
	if errors.Is(err, database.ErrInvalidOperation) {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorSelfFollow,
		})
		return
	} else if errors.Is(err, database.ErrAlreadyFollowing) {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorAlreadyFollowing,
		})
		return
	} else if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorUserNotFound,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to create follow edge")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	h.Cache.Delete(followCountKey + body.CurrentUser)
	h.Cache.Delete(followCountKey + target)

	helpers.PublishEvent(model.Message{
		Type: "follow",
		From: body.CurrentUser,
		To:   target,
	})

	jsonEncoder.Encode(model.RequestError{
		Error:   false,
		Message: OkFollowed,
	})
}

// Unfollow removes the edge symmetrically; removing an edge that
// never existed still succeeds
func (h *Handler) Unfollow(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	defer req.Body.Close()
	var body model.FollowBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.CurrentUser == "" {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInvalidBody,
		})
		return
	}

	target := mux.Vars(req)["username"]
	if err := h.Store.Unfollow(req.Context(), body.CurrentUser, target); err != nil {
		log.Error().Err(err).Msg("unable to delete follow edge")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	h.Cache.Delete(followCountKey + body.CurrentUser)
	h.Cache.Delete(followCountKey + target)

	jsonEncoder.Encode(model.RequestError{
		Error:   false,
		Message: OkUnfollowed,
	})
}

// FollowCount returns both counters of a user, served from the
// cache when fresh
func (h *Handler) FollowCount(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	username := mux.Vars(req)["username"]
	if cached, ok := h.Cache.Get(followCountKey + username); ok {
		w.Write(cached)
		return
	}

	counts, err := h.Store.FollowCounts(req.Context(), username)
	if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorUserNotFound,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to count follows")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	if payload, err := json.Marshal(counts); err == nil {
		h.Cache.Set(followCountKey+username, payload, 60)
	}

	jsonEncoder.Encode(counts)
}
