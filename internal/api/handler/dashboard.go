package handler

import (
	"net/http"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/reporting"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/apiErrors"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/log"
)

// GetDashboard recalcula e retorna o snapshot de KPIs do mês selecionado,
// com o filtro de datas opcional por cima
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := requiredMonthParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		filter := dateFilterParams(r)

		dashboard, err := service.Dashboard(year, month, filter)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao calcular KPIs")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"year":   year,
			"month":  month,
			"period": dashboard.Period,
		}).Info("dashboard: snapshot calculado")

		writeJSON(w, http.StatusOK, dashboard)
	})
}

// GetAvailablePeriods retorna os meses com dados disponíveis
func GetAvailablePeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods, err := service.AvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("periods: erro ao listar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, periods)
	})
}
