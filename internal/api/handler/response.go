package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/flows"
	"github.com/vfg2006/emerging-areas-api/pkg/apiErrors"
	"github.com/vfg2006/emerging-areas-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseRenderParams lê month, negative e layer da query. Parâmetros ausentes usam os
// controles iniciais do painel
func parseRenderParams(r *http.Request, defaults domain.RenderParams) (domain.RenderParams, error) {
	params := defaults
	query := r.URL.Query()

	if month := strings.TrimSpace(query.Get("month")); month != "" {
		value, err := strconv.Atoi(month)
		if err != nil {
			return params, flows.NewPipelineError(flows.ErrInvalidMonth, apiErrors.ErrInvalidFormat, "month deve ser um número inteiro")
		}
		params.Month = value
	}

	if negative := strings.TrimSpace(query.Get("negative")); negative != "" {
		value, err := strconv.ParseBool(negative)
		if err != nil {
			return params, flows.NewPipelineError(err, apiErrors.ErrInvalidFormat, "negative deve ser true ou false")
		}
		params.ShowNegative = value
	}

	if layer := strings.TrimSpace(query.Get("layer")); layer != "" {
		params.LayerStyle = domain.LayerStyle(layer)
	}

	return params, nil
}

// renderViews executa o pipeline e escreve o erro padronizado em caso de falha.
// Retorna nil quando a resposta já foi escrita
func renderViews(w http.ResponseWriter, r *http.Request, service flows.DashboardRenderer) *domain.DashboardViews {
	logger := log.ForContext(r.Context())

	params, err := parseRenderParams(r, service.DefaultParams())
	if err != nil {
		logger.WithError(err).Warn("dashboard: parâmetros malformados")
		writePipelineError(w, err)
		return nil
	}

	views, err := service.Render(r.Context(), params)
	if err != nil {
		writePipelineError(w, err)
		return nil
	}

	return views
}

func writePipelineError(w http.ResponseWriter, err error) {
	code := flows.ErrorCode(err)
	apiErr := apiErrors.FromError(err, code)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	writeJSONStatus(w, r, http.StatusOK, payload)
}

// writeJSONStatus define o Content-Type antes do status; depois de WriteHeader os cabeçalhos são ignorados
func writeJSONStatus(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao codificar resposta")
	}
}
