package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/repository"
)

// AdminHandler handles admin account endpoints
type AdminHandler struct {
	adminRepo repository.AdminRepo
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminRepo repository.AdminRepo) *AdminHandler {
	return &AdminHandler{adminRepo: adminRepo}
}

// Create handles POST /admins
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var admin model.Admin
	if err := json.NewDecoder(r.Body).Decode(&admin); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if admin.Name == "" || admin.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	id, err := h.adminRepo.Create(r.Context(), &admin)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Get handles GET /admins/{id}
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if admin == nil {
		writeError(w, http.StatusNotFound, "admin not found")
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

// List handles GET /admins
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"admins": admins})
}

// Update handles PUT /admins/{id}
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	delete(updates, "_id")
	delete(updates, "id")

	admin, err := h.adminRepo.Update(r.Context(), mux.Vars(r)["id"], updates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if admin == nil {
		writeError(w, http.StatusNotFound, "admin not found")
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

// Delete handles DELETE /admins/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.adminRepo.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "admin not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
