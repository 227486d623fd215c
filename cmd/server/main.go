package main

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/filmorate/internal/config"
	"github.com/iliyamo/filmorate/internal/database"
	"github.com/iliyamo/filmorate/internal/handler"
	"github.com/iliyamo/filmorate/internal/logger"
	"github.com/iliyamo/filmorate/internal/middleware"
	"github.com/iliyamo/filmorate/internal/queue"
	"github.com/iliyamo/filmorate/internal/repository"
	"github.com/iliyamo/filmorate/internal/router"
	"github.com/iliyamo/filmorate/internal/service"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg := config.Load()

	var (
		userStorage   repository.UserStorage
		filmStorage   repository.FilmStorage
		genreStorage  repository.GenreStorage
		ratingStorage repository.RatingStorage
	)
	switch cfg.Storage {
	case config.StorageMemory:
		userStorage = repository.NewUserMemory()
		filmStorage = repository.NewFilmMemory()
		genreStorage = repository.NewGenreMemory()
		ratingStorage = repository.NewRatingMemory()
	default:
		if err := database.Migrate(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, "file://migrations"); err != nil {
			logger.Fatal("migrations failed", err)
		}
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			logger.Fatal("database connection failed", err)
		}
		defer db.Close()
		userStorage = repository.NewUserRepo(db)
		filmStorage = repository.NewFilmRepo(db)
		genreStorage = repository.NewGenreRepo(db)
		ratingStorage = repository.NewRatingRepo(db)
	}

	events := queue.NewPublisher(cfg.AMQPURL)
	users := service.NewUserService(userStorage, events)
	films := service.NewFilmService(filmStorage, users, events)
	genres := service.NewGenreService(genreStorage)
	ratings := service.NewRatingService(ratingStorage)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient()))
	router.RegisterRoutes(e,
		handler.NewUserHandler(users),
		handler.NewFilmHandler(films),
		handler.NewGenreHandler(genres),
		handler.NewRatingHandler(ratings),
	)

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr, "env", cfg.Env, "storage", cfg.Storage)
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", err)
	}
}
