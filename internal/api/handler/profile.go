package handler

import (
	"net/http"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/recording"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/apiErrors"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/log"
)

// GetProfile retorna o perfil do usuário, com os totais acumulados
func GetProfile(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		profile, err := service.Profile()
		if err != nil {
			logger.WithError(err).Error("profile: erro ao carregar perfil")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	})
}

// ClearData apaga todas as vendas, despesas e o perfil
func ClearData(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := service.ClearAll(); err != nil {
			logger.WithError(err).Error("data: erro ao limpar os dados")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
			return
		}

		logger.Warn("data: todos os dados foram apagados")
		w.WriteHeader(http.StatusNoContent)
	})
}
