package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/export"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/flows"
	"github.com/vfg2006/emerging-areas-api/pkg/apiErrors"
	"github.com/vfg2006/emerging-areas-api/pkg/log"
)

type chartRenderer func(w io.Writer, views *domain.DashboardViews) error

// GetChart renderiza uma das séries temporais como PNG
func GetChart(service flows.DashboardRenderer, draw chartRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		views := renderViews(w, r, service)
		if views == nil {
			return
		}

		// Renderiza em memória para ainda poder responder com erro
		var buf bytes.Buffer
		if err := draw(&buf, views); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("charts: erro ao renderizar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrRender, "Erro ao renderizar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("charts: erro ao escrever resposta")
		}
	})
}

func GetFlowsChart(service flows.DashboardRenderer) http.Handler {
	return GetChart(service, export.FlowsChart)
}

func GetNetFlowChart(service flows.DashboardRenderer) http.Handler {
	return GetChart(service, export.NetFlowChart)
}
