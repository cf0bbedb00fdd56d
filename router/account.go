package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusgram/campusgram/database"
	"github.com/campusgram/campusgram/helpers"
	"github.com/campusgram/campusgram/model"
	"github.com/rs/zerolog/log"
)

// Signup registers an account from the multipart signup form,
// hashing the password and storing the optional profile picture
func (h *Handler) Signup(w http.ResponseWriter, req *http.Request) {
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

	name := req.FormValue("name")
	pass := req.FormValue("pass")
	mail := req.FormValue("mail")

	if name == "" || pass == "" || mail == "" {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorMissingFields,
		})
		return
	}

	hash, err := helpers.HashPassword(pass)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	picture, err := helpers.SaveFile(req, "profilePic", h.UploadDir)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorUploading,
		})
		return
	}

	user := model.User{
		Username:   name,
		Password:   hash,
		Email:      mail,
		Bio:        req.FormValue("bio"),
		ProfilePic: picture,
		Followers:  []string{},
		Following:  []string{},
	}

	if err := h.Store.CreateUser(req.Context(), user); err != nil {
		if errors.Is(err, database.ErrConflict) {
			w.WriteHeader(http.StatusBadRequest)
			jsonEncoder.Encode(model.RequestError{
				Error:   true,
				Message: ErrorUserExists,
			})
			return
		}

		log.Error().Err(err).Msg("unable to create user")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	w.WriteHeader(http.StatusCreated)
	jsonEncoder.Encode(model.RequestError{
		Error:   false,
		Message: OkUserCreated,
	})
}

// Login checks the credentials and returns the identity; no
// session token is issued, the caller keeps the username
func (h *Handler) Login(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	jsonEncoder := json.NewEncoder(w)

	defer req.Body.Close()
	var body model.LoginBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.User == "" {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInvalidBody,
		})
		return
	}

	user, err := h.Store.UserByName(req.Context(), body.User)
	if errors.Is(err, database.ErrNotFound) {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInvalidCredentials,
		})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("unable to fetch user")
		w.WriteHeader(http.StatusInternalServerError)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInternalServerError,
		})
		return
	}

	if !helpers.CheckPassword(user.Password, body.Pass) {
		w.WriteHeader(http.StatusBadRequest)
		jsonEncoder.Encode(model.RequestError{
			Error:   true,
			Message: ErrorInvalidCredentials,
		})
		return
	}

	jsonEncoder.Encode(struct {
		Message string `json:"message"`
		User    string `json:"user"`
	}{
		Message: OkLoggedIn,
		User:    user.Username,
	})
}
