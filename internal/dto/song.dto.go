package dto

import "github.com/google/uuid"

// SongRequest represents the request body for adding or updating a song.
// On update the artist_user_id field is ignored; the stored owner is kept.
type SongRequest struct {
	Title        string     `json:"title" validate:"required,max=100"`
	Artist       string     `json:"artist" validate:"required"`
	Genre        *string    `json:"genre"`
	Album        *string    `json:"album"`
	URL          string     `json:"url" validate:"required"`
	ArtistUserID *uuid.UUID `json:"artist_user_id"`
}
