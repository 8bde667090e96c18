package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/voice_bot/internal/delivery"
	"github.com/Vovarama1992/voice_bot/internal/error_notificator"
	"github.com/Vovarama1992/voice_bot/internal/session"
	"github.com/Vovarama1992/voice_bot/internal/speech"
	"github.com/Vovarama1992/voice_bot/internal/storage"
	"github.com/Vovarama1992/voice_bot/internal/telegram"
	"github.com/Vovarama1992/voice_bot/internal/voices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("TELEGRAM_BOT_TOKEN") == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}
	if os.Getenv("ELEVENLABS_API_KEY") == "" {
		log.Fatal("ELEVENLABS_API_KEY is not set")
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// SESSION STORE (выбор голоса)
	// =========================================================================

	registry := voices.NewRegistry()

	var sessionRepo session.Repo
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db ping failed: %v", err)
		}
		defer db.Close()

		sessionRepo = session.NewPgRepo(db)
	} else {
		log.Printf("[main] DATABASE_URL not set, voice selection lives in memory")
		sessionRepo = session.NewMemoryRepo()
	}

	sessionService := session.NewService(sessionRepo, registry)

	// =========================================================================
	// CLIENTS (TTS / STT)
	// =========================================================================

	ttsClient := speech.NewElevenLabsClient()

	var sttClient speech.STTClient
	if os.Getenv("OPENAI_API_KEY") != "" {
		sttClient = speech.NewWhisperClient()
	}

	// =========================================================================
	// STORAGE (аудиофайлы)
	// =========================================================================

	audioDir := os.Getenv("AUDIO_DIR")
	if audioDir == "" {
		audioDir = "audio"
	}

	store, err := storage.NewLocalStore(audioDir)
	if err != nil {
		log.Fatalf("failed to init audio dir: %v", err)
	}

	var mirror storage.Mirror
	if os.Getenv("S3_ENDPOINT") != "" {
		mirror, err = storage.NewS3Mirror()
		if err != nil {
			log.Fatalf("failed to init s3: %v", err)
		}
	}

	speechService := speech.NewService(ttsClient, sttClient, ttsClient, store, mirror)

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := error_notificator.NewInfra(nil)
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	botApp := telegram.NewBotApp(
		sessionService,
		speechService,
		registry,
		errService,
	)

	if err := botApp.InitBot(); err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	errInfra.SetBot(botApp.GetBot())

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	healthHandler := delivery.NewHealthHandler(ttsClient, zl)
	voicesHandler := delivery.NewVoicesHandler(registry)

	delivery.RegisterRoutes(r, healthHandler, voicesHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "voice_bot",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
