package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ArtLens/cache"
	"ArtLens/config"
	"ArtLens/core/auth"
	"ArtLens/core/catalog"
	"ArtLens/core/collection"
	"ArtLens/db"
	"ArtLens/logger"
	"ArtLens/repository"
	"ArtLens/storage"

	"github.com/gorilla/mux"
)

// Start initializes collaborators and runs the HTTP server until a
// termination signal arrives.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.InfoLevel,
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	})

	auth.SetJWTSecret(cfg.JWTSecret)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if err := storage.InitMinio(cfg); err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	if err := db.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.CloseDB()

	if err := db.ConnectGormDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database with GORM: %v", err)
	}
	defer db.CloseGormDB()

	if err := db.ConnectRedis(cfg); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer db.CloseRedis()

	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := db.MigrateGorm(); err != nil {
		log.Fatalf("Failed to migrate GORM tables: %v", err)
	}

	artworkRepo := repository.NewMySQLArtworkRepository(db.DB)
	userRepo := repository.NewMySQLUserRepository(db.DB)
	artistRepo := repository.NewGormArtistRepository(db.GormDB)
	modelRepo := repository.NewGormARModelRepository(db.GormDB)

	recentCache := cache.NewRecentCache(db.RedisClient)
	collectionStore := cache.NewRedisCollectionStore(db.RedisClient)
	assetStore := storage.NewAssetStore(cfg)

	resolver := catalog.NewResolver(artworkRepo, artistRepo, recentCache)
	collections := collection.NewService(collectionStore)

	apiHandler := NewAPIHandler(resolver, collections, userRepo, modelRepo, recentCache, assetStore, cfg)

	// Optional local asset ingest
	if cfg.AssetWatchDir != "" {
		watcher := storage.NewAssetWatcher(assetStore, cfg.AssetWatchDir)
		if err := watcher.Start(); err != nil {
			logger.Warn("asset watcher failed to start", logger.ErrorField(err))
		} else {
			defer watcher.Stop()
		}
	}

	router := mux.NewRouter()

	// CORS middleware
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, HEAD")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Auth endpoints
	router.HandleFunc("/api/auth/register", apiHandler.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", apiHandler.LoginHandler).Methods(http.MethodPost)

	// Catalog endpoints
	router.HandleFunc("/api/artworks", apiHandler.ListArtworksHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/artworks/{id}", apiHandler.OptionalAuth(apiHandler.GetArtworkHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/artworks/{id}/artist", apiHandler.GetArtworkArtistHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/artworks/{id}/recommendations", apiHandler.GetRecommendationsHandler).Methods(http.MethodGet)

	// AR model catalog
	router.HandleFunc("/api/models", apiHandler.ListModelsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/models/{id}/asset", apiHandler.GetModelAssetHandler).Methods(http.MethodGet)

	// Collections (auth required)
	router.HandleFunc("/api/collections", apiHandler.AuthMiddleware(apiHandler.ListCollectionsHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/collections", apiHandler.AuthMiddleware(apiHandler.CreateCollectionHandler)).Methods(http.MethodPost)
	router.HandleFunc("/api/collections/{id}/artworks", apiHandler.AuthMiddleware(apiHandler.AddArtworkToCollectionHandler)).Methods(http.MethodPost)

	// Recently viewed (auth required)
	router.HandleFunc("/api/recent", apiHandler.AuthMiddleware(apiHandler.RecentArtworksHandler)).Methods(http.MethodGet)

	// Environment styling (pure lookup, no auth)
	router.HandleFunc("/api/environment", apiHandler.EnvironmentHandler).Methods(http.MethodGet)

	// Live viewer session
	router.HandleFunc("/ws/viewer", apiHandler.ViewerSocketHandler)

	server.Handler = router

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s...", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
