package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/anuragk04/melodify/internal/handler"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlaylistHandler_Create_Success(t *testing.T) {
	mockService := new(MockPlaylistService)
	h := handler.NewPlaylistHandler(mockService)
	userID := uuid.New()

	mockService.On("Create", mock.Anything, "Road Trip", userID).
		Return(&domain.Playlist{ID: uuid.New(), Name: "Road Trip", UserID: userID}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/playlists?name=Road+Trip&userId="+userID.String(), nil)
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestPlaylistHandler_Create_MissingName(t *testing.T) {
	mockService := new(MockPlaylistService)
	h := handler.NewPlaylistHandler(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/playlists?userId="+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistHandler_AddSong(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"playlist missing", domain.ErrPlaylistNotFound, http.StatusNotFound},
		{"song missing", domain.ErrSongNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPlaylistService)
			h := handler.NewPlaylistHandler(mockService)
			playlistID := uuid.New()
			songID := uuid.New()

			if tt.serviceErr == nil {
				mockService.On("AddSong", mock.Anything, playlistID, songID).
					Return(&domain.Playlist{ID: playlistID}, nil)
			} else {
				mockService.On("AddSong", mock.Anything, playlistID, songID).Return(nil, tt.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/playlists/"+playlistID.String()+"/songs/"+songID.String(), nil)
			req.SetPathValue("playlistId", playlistID.String())
			req.SetPathValue("songId", songID.String())
			w := httptest.NewRecorder()

			h.AddSong(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPlaylistHandler_ListForUser(t *testing.T) {
	mockService := new(MockPlaylistService)
	h := handler.NewPlaylistHandler(mockService)
	userID := uuid.New()

	mockService.On("ListForUser", mock.Anything, userID).
		Return([]domain.Playlist{{Name: "Mine", UserID: userID}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/playlists/user/"+userID.String(), nil)
	req.SetPathValue("userId", userID.String())
	w := httptest.NewRecorder()

	h.ListForUser(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlaylistHandler_Delete_NotFound(t *testing.T) {
	mockService := new(MockPlaylistService)
	h := handler.NewPlaylistHandler(mockService)
	id := uuid.New()

	mockService.On("Delete", mock.Anything, id).Return(domain.ErrPlaylistNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/playlists/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	h.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
