package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/database"
	"github.com/otychat/server/internal/game"
)

// AdminAuth checks the admin code and manages admin tokens
type AdminAuth interface {
	VerifyCode(code string) bool
	GenerateAdminToken(subject string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// GameAdmin is the admin surface of the session coordinator
type GameAdmin interface {
	Grant(ctx context.Context, name string, g game.Grant) error
	SpawnFor(ctx context.Context, name string, speciesID int, shiny bool) error
}

type AdminHandler struct {
	auth AdminAuth
	game GameAdmin
}

func NewAdminHandler(auth AdminAuth, coordinator GameAdmin) *AdminHandler {
	return &AdminHandler{auth: auth, game: coordinator}
}

// LoginRequest represents the admin login request body
type LoginRequest struct {
	Code string `json:"code"`
}

// AuthResponse represents the admin login response
type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

// GrantRequest names the trainer and what to give them
type GrantRequest struct {
	Name string `json:"name"`
	game.Grant
}

// SpawnRequest asks for a spawn for one connected trainer. A zero species
// rolls from the trainer's zone.
type SpawnRequest struct {
	Name      string `json:"name"`
	SpeciesID int    `json:"species_id"`
	Shiny     bool   `json:"shiny"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Login exchanges the admin code for an admin token
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "Code is required")
		return
	}

	if !h.auth.VerifyCode(req.Code) {
		log.Printf("[Admin] Rejected login from %s", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "Invalid admin code")
		return
	}

	token, err := h.auth.GenerateAdminToken("console")
	if err != nil {
		log.Printf("[Admin] Failed to generate admin token: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{AccessToken: token})
	log.Printf("[Admin] Admin logged in from %s", r.RemoteAddr)
}

// Logout revokes the bearer token of the request
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := h.auth.Revoke(r.Context(), token); err != nil {
		log.Printf("[Admin] Failed to revoke token: %v", err)
		writeError(w, http.StatusNotImplemented, "Token revocation is unavailable")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Grant tops up a trainer's coins, XP, balls, stones or creatures
func (h *AdminHandler) Grant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name, ok := game.NormalizeName(req.Name)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid trainer name")
		return
	}
	if err := req.Grant.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.game.Grant(r.Context(), name, req.Grant)
	switch {
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, "Trainer not found")
	case err != nil:
		log.Printf("[Admin] Grant to %s failed: %v", name, err)
		writeError(w, http.StatusInternalServerError, "Grant failed")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Granted to " + name})
	}
}

// Spawn forces a spawn for one connected trainer
func (h *AdminHandler) Spawn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SpawnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name, ok := game.NormalizeName(req.Name)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid trainer name")
		return
	}
	if req.SpeciesID != 0 {
		if _, ok := catalog.GetSpecies(req.SpeciesID); !ok {
			writeError(w, http.StatusBadRequest, "Unknown species")
			return
		}
	}

	err := h.game.SpawnFor(r.Context(), name, req.SpeciesID, req.Shiny)
	switch {
	case errors.Is(err, game.ErrNotOnline):
		writeError(w, http.StatusNotFound, "Trainer is not online")
	case err != nil:
		log.Printf("[Admin] Spawn for %s failed: %v", name, err)
		writeError(w, http.StatusInternalServerError, "Spawn failed")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Spawned for " + name})
	}
}
