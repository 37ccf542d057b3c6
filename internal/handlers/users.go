package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/Dhruv435/slugma-admin/internal/store"
)

type UserHandler struct {
	Store *store.Store
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.GetAllUsers()
	if err != nil {
		slog.Error("Failed to fetch users", "error", err)
		respondError(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	if err := h.Store.DeleteUser(id); err != nil {
		if err == store.ErrNotFound {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("Failed to delete user", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "Error deleting user")
		return
	}
	RecordAdminOperation("user_delete", true)
	respondMessage(w, http.StatusOK, "User deleted successfully")
}
