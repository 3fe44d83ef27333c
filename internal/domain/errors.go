package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSongNotFound       = errors.New("song not found")
	ErrPlaylistNotFound   = errors.New("playlist not found")
	ErrInvalidSearchType  = errors.New("invalid search type")
)
