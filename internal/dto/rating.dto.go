package dto

import "github.com/google/uuid"

// RatingRequest represents the request body for submitting a rating
type RatingRequest struct {
	Rating int       `json:"rating" validate:"required,min=1,max=5"`
	Review string    `json:"review"`
	UserID uuid.UUID `json:"user_id" validate:"required"`
	SongID uuid.UUID `json:"song_id" validate:"required"`
}
