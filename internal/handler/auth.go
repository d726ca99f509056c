package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ametelin/fintrack/internal/logger"
	"github.com/ametelin/fintrack/internal/utils"
	"github.com/ametelin/fintrack/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.Auth.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: "User registered successfully",
		User:    registeredUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.Auth.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
