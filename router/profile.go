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

// Profile returns the account fields with both follow lists
// resolved, recomputed on every read
func (h *Handler) Profile(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	user, err := h.Store.UserByName(req.Context(), mux.Vars(req)["username"])
	if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorUserNotFound,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to fetch profile")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}

	jsonEncoder.Encode(model.Profile{
		Username:   user.Username,
		Email:      user.Email,
		Bio:        user.Bio,
		ProfilePic: user.ProfilePic,
		Followers:  user.Followers,
		Following:  user.Following,
	})
}

// EditProfile applies a partial update: only the bio and profile
// picture fields present in the multipart form are touched
func (h *Handler) EditProfile(w http.ResponseWriter, req *http.Request) {
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

	var bio *string
	if values, ok := req.MultipartForm.Value["bio"]; ok && len(values) > 0 {
		bio = &values[0]
	}

	var picture *string
	path, err := helpers.SaveFile(req, "profilePic", h.UploadDir)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorUploading,
		})
		return
	}
	if path != "" {
		picture = &path
	}

	err = h.Store.EditProfile(req.Context(), mux.Vars(req)["username"], bio, picture)
	if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorUserNotFound,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to edit profile")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	jsonEncoder.Encode(model.RequestError{
		Error:   false,
		Message: OkProfileEdited,
	})
}
