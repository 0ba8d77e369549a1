package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"viukon-cms/services"
	"viukon-cms/utils"

	"github.com/go-playground/validator/v10"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

type AuthHandler struct {
	Service  *services.AuthService
	validate *validator.Validate
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service, validate: validator.New()}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<12)).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid credentials format")
		return
	}

	result, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.WriteError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
