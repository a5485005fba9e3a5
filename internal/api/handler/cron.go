package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/internal/scheduler"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
)

// Tipos de cron job aceitos na execução manual
const (
	CronJobTypeCacheSweep = scheduler.CacheSweepJobName
	CronJobTypeAll        = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	CacheSweepService *scheduler.CacheSweepService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logrus.WithField("job", cronType).Info("Execução manual de cron job solicitada")

		switch cronType {
		case CronJobTypeCacheSweep, CronJobTypeAll:
			if services.CacheSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza do cache não disponível", nil)
				return
			}
			if !services.CacheSweepService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Limpeza do cache já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownJobType, "Tipo de cron job inválido. Valores aceitos: cache-sweep, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CacheSweepService != nil {
			status[CronJobTypeCacheSweep] = services.CacheSweepService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
