package handler

import (
	"encoding/json"
	"net/http"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/anuragk04/melodify/internal/dto"
	"github.com/anuragk04/melodify/internal/service"
	"github.com/google/uuid"
)

type RatingHandler struct {
	service service.RatingService
}

func NewRatingHandler(service service.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

// Add handles POST /api/ratings
func (h *RatingHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// The 1..5 range check happens here, before anything touches the store.
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rating, err := h.service.Add(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound, domain.ErrSongNotFound:
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, rating)
}

// BySong handles GET /api/ratings/song/{songId}
func (h *RatingHandler) BySong(w http.ResponseWriter, r *http.Request) {
	songID, err := uuid.Parse(r.PathValue("songId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	ratings, err := h.service.BySong(r.Context(), songID)
	if err != nil {
		if err == domain.ErrSongNotFound {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ratings)
}

// ByUser handles GET /api/ratings/user/{userId}
func (h *RatingHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ratings, err := h.service.ByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ratings)
}
