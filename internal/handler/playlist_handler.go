package handler

import (
	"net/http"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/anuragk04/melodify/internal/service"
	"github.com/google/uuid"
)

type PlaylistHandler struct {
	service service.PlaylistService
}

func NewPlaylistHandler(service service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

// Create handles POST /api/playlists?name=&userId=
// Parameters arrive as query values, matching the public API shape.
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	playlist, err := h.service.Create(r.Context(), name, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

// AddSong handles POST /api/playlists/{playlistId}/songs/{songId}
func (h *PlaylistHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuid.Parse(r.PathValue("playlistId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid playlist id")
		return
	}
	songID, err := uuid.Parse(r.PathValue("songId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	playlist, err := h.service.AddSong(r.Context(), playlistID, songID)
	if err != nil {
		switch err {
		case domain.ErrPlaylistNotFound, domain.ErrSongNotFound:
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

// ListForUser handles GET /api/playlists/user/{userId}
func (h *PlaylistHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	playlists, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}

// Delete handles DELETE /api/playlists/{id}
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid playlist id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if err == domain.ErrPlaylistNotFound {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}
