package router

import (
	"net/http"

	"github.com/anuragk04/melodify/internal/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds all the handlers needed for routing
type Config struct {
	UserHandler     *handler.UserHandler
	SongHandler     *handler.SongHandler
	PlaylistHandler *handler.PlaylistHandler
	RatingHandler   *handler.RatingHandler
}

// Setup creates and configures all application routes
func Setup(config Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// User Routes
	mux.HandleFunc("POST /api/users/register", config.UserHandler.Register)
	mux.HandleFunc("POST /api/users/login", config.UserHandler.Login)
	mux.HandleFunc("PUT /api/users/{id}", config.UserHandler.UpdateProfile)
	mux.HandleFunc("DELETE /api/users/{id}", config.UserHandler.Delete)
	mux.HandleFunc("GET /api/users", config.UserHandler.List)
	mux.HandleFunc("GET /api/users/{id}", config.UserHandler.GetByID)

	// Song Routes
	mux.HandleFunc("POST /api/songs", config.SongHandler.Add)
	mux.HandleFunc("PUT /api/songs/{id}", config.SongHandler.Update)
	mux.HandleFunc("DELETE /api/songs/{id}", config.SongHandler.Delete)
	mux.HandleFunc("GET /api/songs/search", config.SongHandler.Search)
	mux.HandleFunc("GET /api/songs/artist/{artistId}", config.SongHandler.SongsByArtist)
	mux.HandleFunc("GET /api/songs/recommend", config.SongHandler.Recommend)
	mux.HandleFunc("GET /api/songs", config.SongHandler.List)

	// Playlist Routes
	mux.HandleFunc("POST /api/playlists", config.PlaylistHandler.Create)
	mux.HandleFunc("POST /api/playlists/{playlistId}/songs/{songId}", config.PlaylistHandler.AddSong)
	mux.HandleFunc("GET /api/playlists/user/{userId}", config.PlaylistHandler.ListForUser)
	mux.HandleFunc("DELETE /api/playlists/{id}", config.PlaylistHandler.Delete)

	// Rating Routes
	mux.HandleFunc("POST /api/ratings", config.RatingHandler.Add)
	mux.HandleFunc("GET /api/ratings/song/{songId}", config.RatingHandler.BySong)
	mux.HandleFunc("GET /api/ratings/user/{userId}", config.RatingHandler.ByUser)

	return mux
}
