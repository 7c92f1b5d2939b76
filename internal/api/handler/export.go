package handler

import (
	"fmt"
	"net/http"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/exporting"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/apiErrors"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/log"
)

// ExportReport serve o relatório CSV do período filtrado como download
func ExportReport(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := requiredMonthParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		filter := dateFilterParams(r)

		report, err := service.ExportCSV(year, month, filter)
		if err != nil {
			logger.WithError(err).Error("export: erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))

		if _, err := w.Write([]byte(report.Content)); err != nil {
			logger.WithError(err).Error("export: erro ao escrever resposta")
		}
	})
}
