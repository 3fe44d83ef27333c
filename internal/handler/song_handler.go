package handler

import (
	"encoding/json"
	"net/http"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/anuragk04/melodify/internal/dto"
	"github.com/anuragk04/melodify/internal/service"
	"github.com/google/uuid"
)

type SongHandler struct {
	service service.SongService
}

func NewSongHandler(service service.SongService) *SongHandler {
	return &SongHandler{service: service}
}

// Add handles POST /api/songs
func (h *SongHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.SongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	song, err := h.service.Add(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, song)
}

// Update handles PUT /api/songs/{id}
func (h *SongHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	var req dto.SongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	song, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if err == domain.ErrSongNotFound {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, song)
}

// Delete handles DELETE /api/songs/{id}
func (h *SongHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if err == domain.ErrSongNotFound {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Search handles GET /api/songs/search?query=&type=
func (h *SongHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	searchType := r.URL.Query().Get("type")

	songs, err := h.service.Search(r.Context(), query, searchType)
	if err != nil {
		if err == domain.ErrInvalidSearchType {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, songs)
}

// SongsByArtist handles GET /api/songs/artist/{artistId}
func (h *SongHandler) SongsByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := uuid.Parse(r.PathValue("artistId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid artist id")
		return
	}

	songs, err := h.service.SongsByArtist(r.Context(), artistID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, songs)
}

// Recommend handles GET /api/songs/recommend?genre=
func (h *SongHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")

	songs, err := h.service.Recommend(r.Context(), genre)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, songs)
}

// List handles GET /api/songs
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	songs, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, songs)
}
