package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/emerging-areas-api/internal/usecases/flows"
)

// HealthcheckHandler responde 200 enquanto o processo está de pé. O campo dataset indica
// se já existe um snapshot publicado
func HealthcheckHandler(service flows.DashboardRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"time":    time.Now().Format(time.RFC3339),
			"dataset": "loaded",
		}

		snapshot, err := service.Snapshot()
		if err != nil {
			response["dataset"] = "unavailable"
		} else {
			response["snapshot_id"] = snapshot.ID
		}

		writeJSON(w, r, response)
	})
}
