package handler

import (
	"net/http"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/export"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/flows"
	"github.com/vfg2006/emerging-areas-api/pkg/apiErrors"
	"github.com/vfg2006/emerging-areas-api/pkg/log"
)

type mapResponse struct {
	Period domain.Period       `json:"period"`
	Layer  domain.MapLayer     `json:"layer"`
	View   domain.MapViewState `json:"view"`
}

type leaderboardResponse struct {
	Period      domain.Period      `json:"period"`
	Leaderboard domain.Leaderboard `json:"leaderboard"`
}

type timeSeriesResponse struct {
	Period     domain.Period     `json:"period"`
	TimeSeries domain.TimeSeries `json:"time_series"`
}

// GetDashboard retorna todas as visualizações para os controles informados
func GetDashboard(service flows.DashboardRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		views := renderViews(w, r, service)
		if views == nil {
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month":       views.Params.Month,
			"snapshot_id": views.SnapshotID,
		}).Info("dashboard: visualizações geradas")

		writeJSON(w, r, views)
	})
}

// GetMap retorna a camada do mapa e o estado da câmera
func GetMap(service flows.DashboardRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		views := renderViews(w, r, service)
		if views == nil {
			return
		}

		writeJSON(w, r, mapResponse{Period: views.Period, Layer: views.Map, View: views.View})
	})
}

// GetMapGeoJSON retorna as áreas do mapa como FeatureCollection
func GetMapGeoJSON(service flows.DashboardRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		views := renderViews(w, r, service)
		if views == nil {
			return
		}

		raw, err := export.MapGeoJSON(views)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("map-geojson: erro ao serializar camada")
			apiErrors.WriteError(w, apiErrors.ErrRender, "Erro ao gerar GeoJSON", nil)
			return
		}

		w.Header().Set("Content-Type", "application/geo+json")
		if _, err := w.Write(raw); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("map-geojson: erro ao escrever resposta")
		}
	})
}

// GetLeaderboard retorna as melhores e piores áreas do período acumulado
func GetLeaderboard(service flows.DashboardRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		views := renderViews(w, r, service)
		if views == nil {
			return
		}

		writeJSON(w, r, leaderboardResponse{Period: views.Period, Leaderboard: views.Leaderboard})
	})
}

// GetTimeSeries retorna as séries de fluxo e de fluxo líquido acumulado
func GetTimeSeries(service flows.DashboardRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		views := renderViews(w, r, service)
		if views == nil {
			return
		}

		writeJSON(w, r, timeSeriesResponse{Period: views.Period, TimeSeries: views.TimeSeries})
	})
}

// GetDataset retorna os metadados do snapshot carregado
func GetDataset(service flows.DashboardRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.Snapshot()
		if err != nil {
			writePipelineError(w, err)
			return
		}

		writeJSON(w, r, snapshot)
	})
}
