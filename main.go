package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/iamasit07/othello/backend/bot"
	"github.com/iamasit07/othello/backend/cache"
	"github.com/iamasit07/othello/backend/config"
	"github.com/iamasit07/othello/backend/handlers"
	"github.com/iamasit07/othello/backend/middlewares"
	"github.com/iamasit07/othello/backend/websocket"
)

func main() {
	log.Println("Starting othello backend server...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()

	positions := cache.New(buildCacheStore(cfg))

	hasher := bot.NewZobristHasher(cfg.ZobristSeed)
	aiBot := bot.New(hasher, positions, cfg.SearchDepth, rand.New(rand.NewSource(time.Now().UnixNano())))

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/api/move", handlers.HandleMove)
	mux.HandleFunc("/api/ai-move", handlers.MakeHandleAIMove(aiBot))
	mux.HandleFunc("/api/valid-moves", handlers.HandleValidMoves)

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.CreateUpgrader(cfg.AllowedOrigins)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error during connection upgrade:", err)
			return
		}

		websocket.HandleConnection(conn, aiBot)
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middlewares.EnableCORS(cfg.AllowedOrigins, mux),
	}

	log.Printf("Server is listening on port %s\n", cfg.Port)

	go func() {
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Server is shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

// buildCacheStore wires the configured cache backend. Any failure here is
// logged and the server runs with the cache disabled: every AI request
// just pays for a fresh search.
func buildCacheStore(cfg *config.Config) cache.Store {
	switch cfg.CacheBackend {
	case "postgres":
		if cfg.DBUri == "" {
			log.Println("[CACHE] DB_URI not set, running without position cache")
			return nil
		}
		db, err := cache.OpenPostgres(cfg.DBUri, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Printf("[CACHE] Warning: %v. Running without position cache.", err)
			return nil
		}
		store := cache.NewPostgresStore(db, cfg.CacheTable)
		if err := store.Migrate(context.Background()); err != nil {
			log.Printf("[CACHE] Warning: %v. Running without position cache.", err)
			return nil
		}
		return store
	case "redis":
		client, err := cache.NewRedisClient(cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			log.Printf("[CACHE] Warning: %v. Running without position cache.", err)
			return nil
		}
		return cache.NewRedisStore(client)
	case "memory":
		log.Println("[CACHE] Using in-memory position cache (lost on restart)")
		return cache.NewMemoryStore()
	case "", "none":
		log.Println("[CACHE] No backend configured, running without position cache")
		return nil
	default:
		log.Printf("[CACHE] Unknown backend %q, running without position cache", cfg.CacheBackend)
		return nil
	}
}
