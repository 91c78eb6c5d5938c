package handler

import (
	"net/http"

	"carshield-admin-api/internal/model"
	"carshield-admin-api/internal/repository"
)

type ClientHandler struct {
	clientRepo *repository.ClientRepo
}

func NewClientHandler(clientRepo *repository.ClientRepo) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo}
}

// List serves the client feed for the administration screens.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "failed to list clients")
		return
	}
	if clients == nil {
		clients = []model.ClientRecord{}
	}
	writeJSON(w, http.StatusOK, model.ClientsResponse{Clients: clients})
}

// Exists runs the duplicate existence check directly, for front ends that
// want to probe before submitting.
func (h *ClientHandler) Exists(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	candidate := model.DraftClient{
		FirstName: q.Get("name"),
		Phone:     q.Get("phone"),
	}
	if candidate.FirstName == "" && candidate.Phone == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name or phone is required")
		return
	}

	result, err := h.clientRepo.CheckExists(r.Context(), candidate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "failed to check client existence")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
