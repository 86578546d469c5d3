package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/rs/cors"
	"golang.org/x/net/netutil"

	"luna-assistant-backend/internal/ai"
	"luna-assistant-backend/internal/analytics"
	"luna-assistant-backend/internal/auth"
	"luna-assistant-backend/internal/config"
	"luna-assistant-backend/internal/db"
	"luna-assistant-backend/internal/notes"
	"luna-assistant-backend/internal/patterns"
	"luna-assistant-backend/internal/places"
	"luna-assistant-backend/internal/plans"
	"luna-assistant-backend/internal/reminders"
)

const maxConns = 512

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		log.Fatal("failed to connect DB:", err)
	}
	defer database.Close()

	log.Println("connected to PostgreSQL")

	secret := []byte(cfg.JWTSecret)
	mw := auth.New(secret)

	remStore := reminders.NewStore(database)
	aiClient := ai.New(cfg.OpenAIKey, cfg.OpenAIModel)
	placesClient := places.New(cfg.PlacesAPIKey, cfg.PlacesBaseURL)

	// reminder delivery loop
	var sender reminders.Sender = reminders.LogSender{}
	if cfg.PushGatewayURL != "" {
		sender = reminders.NewGatewaySender(cfg.PushGatewayURL)
	}
	dispatcher := reminders.NewDispatcher(remStore, sender, cfg.DispatchInterval)
	go dispatcher.Run(context.Background())

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- AUTH -----
	mux.HandleFunc("/auth/register", auth.RegisterHandler(database, secret))
	mux.HandleFunc("/auth/login", auth.LoginHandler(database, secret))
	mux.HandleFunc("/auth/me", mw.Wrap(auth.MeHandler(database)))
	mux.HandleFunc("/auth/logout", mw.Wrap(auth.LogoutHandler()))
	mux.HandleFunc("/auth/account", mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			auth.DeleteAccountHandler(database)(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// ----- NOTES -----
	mux.HandleFunc("/notes", mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			notes.ListHandler(database)(w, r)
		case http.MethodPost:
			notes.CreateHandler(database, remStore)(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// ----- REMINDERS -----
	mux.HandleFunc("/reminders", mw.Wrap(reminders.ListHandler(remStore)))
	mux.HandleFunc("/reminders/", mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/done"):
			reminders.DoneHandler(remStore)(w, r)
		case strings.HasSuffix(r.URL.Path, "/reschedule"):
			reminders.RescheduleHandler(remStore)(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))

	// ----- PATTERNS -----
	mux.HandleFunc("/patterns", mw.Wrap(patterns.Handler(database, remStore)))

	// ----- WEEKEND PLANS -----
	mux.HandleFunc("/plans/weekend", mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			plans.GetHandler(database)(w, r)
		case http.MethodPost:
			plans.GenerateHandler(database, aiClient, placesClient, remStore)(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// ----- ANALYTICS -----
	mux.HandleFunc("/analytics/event", mw.Wrap(analytics.IngestHandler(database)))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Idempotency-Key", "X-Platform", "X-App-Version", "X-Session-Id", "X-Device-Locale"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		log.Fatal("listen:", err)
	}
	ln = netutil.LimitListener(ln, maxConns)

	log.Printf("API server is running on :%d", cfg.Port)
	log.Fatal(http.Serve(ln, handler))
}
