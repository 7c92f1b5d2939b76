package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/importing"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/recording"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/reporting"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/apiErrors"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/log"
)

// ListSales lista as vendas, de todos os meses ou do mês informado
func ListSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := monthParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		sales, err := service.ListSales(year, month)
		if err != nil {
			logger.WithError(err).Error("sales: erro ao listar vendas")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

// CreateSale registra uma venda manual
func CreateSale(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input recording.NewSale
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		sale, err := service.AddSale(input)
		if err != nil {
			if errors.Is(err, recording.ErrInvalidDate) || errors.Is(err, recording.ErrNegativeAmount) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("sales: erro ao registrar venda manual")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"sale_id": sale.ID,
			"date":    sale.Date,
		}).Info("sales: venda manual registrada")

		writeJSON(w, http.StatusCreated, sale)
	})
}

// ImportSales recebe o conteúdo do CSV no corpo e importa o mês informado.
// Qualquer linha inválida rejeita o arquivo inteiro.
func ImportSales(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := requiredMonthParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "erro ao ler o corpo da requisição", nil)
			return
		}

		result, err := service.ImportCSV(string(body), year, month)
		if err != nil {
			var parseErr *importing.ParseError
			if errors.As(err, &parseErr) {
				apiErrors.WriteError(w, apiErrors.ErrMalformedRow, parseErr.Error(), map[string]any{
					"linha":  parseErr.Line,
					"motivo": parseErr.Reason,
				})
				return
			}

			if errors.Is(err, importing.ErrNoValidSales) {
				apiErrors.WriteError(w, apiErrors.ErrNoValidData, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("import: erro ao importar CSV")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusCreated, result)
	})
}
