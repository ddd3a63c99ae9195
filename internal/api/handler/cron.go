package handler

import (
	"net/http"

	"github.com/vfg2006/emerging-areas-api/pkg/apiErrors"
	"github.com/vfg2006/emerging-areas-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReload = "reload"
)

// ManualSyncer é um agendador que aceita execução manual
type ManualSyncer interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DatasetReloadService ManualSyncer
}

func (s CronJobServices) byType(cronType string) (ManualSyncer, bool) {
	switch cronType {
	case CronJobTypeReload:
		return s.DatasetReloadService, s.DatasetReloadService != nil
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices, cronType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		service, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cron não disponível", nil)
			return
		}

		service.TriggerManualSync()
		logger.WithField("type", cronType).Info("cron: execução manual solicitada")

		writeJSONStatus(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetReloadService != nil {
			status[CronJobTypeReload] = services.DatasetReloadService.GetStatus()
		}

		writeJSON(w, r, status)
	}
}
