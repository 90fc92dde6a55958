package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
)

type serviceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type healthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]serviceStatus `json:"services"`
}

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]serviceStatus)

		dbStatus := "ok"
		dbDetails := "SQLite connected"
		if err := db.Ping(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["sqlite"] = serviceStatus{Status: dbStatus, Details: dbDetails}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := healthCheckResponse{
			Status:   overallStatus,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Services: services,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
