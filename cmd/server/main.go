package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/anuragk04/melodify/internal/config"
	"github.com/anuragk04/melodify/internal/database"
	"github.com/anuragk04/melodify/internal/gateway"
	"github.com/anuragk04/melodify/internal/handler"
	"github.com/anuragk04/melodify/internal/middleware"
	"github.com/anuragk04/melodify/internal/repository"
	"github.com/anuragk04/melodify/internal/router"
	"github.com/anuragk04/melodify/internal/service"
	"github.com/anuragk04/melodify/pkg/migration"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log.Println("Connecting to DB...")
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()
	log.Printf("Database Connected Successfully!")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := migration.AutoMigrate(cfg.Database.URL(), cfg.Server.MigrationsPath, logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	songRepo := repository.NewSongRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	userService := service.NewUserService(userRepo)
	songService := service.NewSongService(songRepo)
	playlistService := service.NewPlaylistService(playlistRepo, songRepo)
	ratingService := service.NewRatingService(ratingRepo, songRepo)

	mux := router.Setup(router.Config{
		UserHandler:     handler.NewUserHandler(userService),
		SongHandler:     handler.NewSongHandler(songService),
		PlaylistHandler: handler.NewPlaylistHandler(playlistService),
		RatingHandler:   handler.NewRatingHandler(ratingService),
	})

	wrapped := middleware.PrometheusMiddleware(mux)
	wrapped = middleware.CORSMiddleware(wrapped, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, wrapped)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
