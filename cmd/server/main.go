package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/db"
	"team-analysis/standup/internal/logging"
	"team-analysis/standup/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Standup engine starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if err := db.InitSQLite(cfg.SQLitePath); err != nil {
		logging.Error("Failed to open SQLite (sqlx)", "error", err.Error())
		log.Fatalf("Failed to open SQLite (sqlx): %v", err)
	}
	logging.Info("Connected to SQLite (sqlx)", "path", cfg.SQLitePath)

	if _, err := db.InitSQLiteORM(cfg.SQLitePath); err != nil {
		logging.Error("Failed to open SQLite (GORM)", "error", err.Error())
		log.Fatalf("Failed to open SQLite (GORM): %v", err)
	}
	logging.Info("Connected to SQLite (GORM)")

	upSince := time.Now()

	router := routes.RegisterRoutes(cfg, upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	logging.Info("Server starting",
		"addr", cfg.ListenAddr,
		"environment", cfg.AppEnv,
	)

	log.Fatal(http.ListenAndServe(cfg.ListenAddr, mux))
}
