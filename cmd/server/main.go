package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/otychat/server/internal/auth"
	"github.com/otychat/server/internal/config"
	"github.com/otychat/server/internal/database"
	"github.com/otychat/server/internal/game"
	"github.com/otychat/server/internal/handlers"
	"github.com/otychat/server/internal/middleware"
	redisClient "github.com/otychat/server/internal/redis"
	"github.com/otychat/server/internal/ws"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[API] Failed to load .env: %v", err)
	}

	serverConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("[API] %v", err)
	}
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("[API] %v", err)
	}
	redisConfig, err := redisClient.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("[API] %v", err)
	}
	authConfig, err := auth.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("[API] %v", err)
	}

	// Initialize database connection
	log.Println("[API] Initializing database connection...")
	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatalf("[API] Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatalf("[API] Failed to initialize schema: %v", err)
	}
	log.Println("[API] Database connected successfully")

	authenticator, err := auth.New(authConfig)
	if err != nil {
		log.Fatalf("[API] Failed to initialize auth: %v", err)
	}

	// Rankings and feed live in Redis when it is enabled, otherwise they are
	// computed from SQL and kept in memory.
	var board game.Leaderboard = db.Rankings()
	var feed game.Feed = game.NewMemoryFeed(serverConfig.FeedSize)
	var adminSessions *redisClient.AdminSessions
	if redisConfig.Enabled {
		rdb, err := redisClient.NewClient(redisConfig)
		if err != nil {
			log.Fatalf("[API] Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		totals, err := db.AllTrainerTotals(ctx)
		if err == nil {
			err = rdb.Leaderboard().Rebuild(ctx, totals)
		}
		cancel()
		if err != nil {
			log.Fatalf("[API] Failed to seed Redis leaderboards: %v", err)
		}
		log.Printf("[API] Seeded Redis leaderboards for %d trainers", len(totals))

		board = rdb.Leaderboard().WithProfiles(db)
		feed = rdb.Feed(serverConfig.FeedSize)
		adminSessions = rdb.AdminSessions()
		authenticator.UseSessions(adminSessions)
	}

	hub := ws.NewHub()
	coordinator := game.New(db, hub, game.Options{
		CatchWindow:      serverConfig.CatchWindow,
		MinSpawnInterval: serverConfig.SpawnMinInterval,
		MaxSpawnInterval: serverConfig.SpawnMaxInterval,
		LeaderboardSize:  serverConfig.LeaderboardSize,
		FeedSize:         serverConfig.FeedSize,
		Leaderboard:      board,
		Feed:             feed,
		Admin:            authenticator,
	})
	if err := coordinator.Resume(context.Background()); err != nil {
		log.Fatalf("[API] Failed to resume presentation: %v", err)
	}
	defer coordinator.Close()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(authenticator, coordinator)
	leaderboardHandler := handlers.NewLeaderboardHandler(board, feed, serverConfig.LeaderboardSize)
	zoneHandler := handlers.NewZoneHandler(coordinator)
	trainerHandler := handlers.NewTrainerHandler(db, coordinator, nil)
	requireAdmin := middleware.RequireAdmin(authenticator)

	// Setup HTTP routes
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		health := map[string]any{
			"status":      "healthy",
			"time":        time.Now().Format(time.RFC3339),
			"live":        coordinator.Live(),
			"connections": hub.Count(),
		}
		if adminSessions != nil {
			n, err := adminSessions.Count(r.Context())
			if err != nil {
				log.Printf("[API] Failed to count admin sessions: %v", err)
			}
			health["admin_sessions"] = n
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	})

	// Websocket
	mux.Handle("/ws", ws.NewHandler(hub, coordinator, serverConfig.AllowedOrigins))

	// Public routes
	mux.HandleFunc("/api/leaderboard", leaderboardHandler.GetLeaderboard)
	mux.HandleFunc("/api/feed", leaderboardHandler.GetFeed)
	mux.HandleFunc("/api/zones", zoneHandler.GetZones)
	mux.HandleFunc("/api/trainers/{name}", trainerHandler.GetTrainer)

	// Admin routes
	mux.HandleFunc("/api/admin/login", adminHandler.Login)
	mux.HandleFunc("/api/admin/logout", requireAdmin(adminHandler.Logout))
	mux.HandleFunc("/api/admin/grant", requireAdmin(adminHandler.Grant))
	mux.HandleFunc("/api/admin/spawn", requireAdmin(adminHandler.Spawn))

	// CORS middleware
	handler := corsMiddleware(mux)

	// Start server
	server := &http.Server{
		Addr:        ":" + serverConfig.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("[API] Starting server on port %s...", serverConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[API] Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("[API] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[API] Shutdown error: %v", err)
	}
	// Shutdown leaves hijacked websockets alone; drain them before the
	// coordinator and database close.
	if err := hub.CloseAll(ctx); err != nil {
		log.Printf("[API] Websocket drain error: %v", err)
	}
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
