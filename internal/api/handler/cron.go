package handler

import (
	"net/http"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/scheduler"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/apiErrors"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/log"
)

// RunBackup dispara um backup do arquivo de dados imediatamente
func RunBackup(service *scheduler.BackupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := service.RunNow(); err != nil {
			logger.WithError(err).Error("cron: erro ao executar backup")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, service.Status())
	})
}

// GetCronStatus retorna o estado do agendador de backup
func GetCronStatus(service *scheduler.BackupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Status())
	})
}
