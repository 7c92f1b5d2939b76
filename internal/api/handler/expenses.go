package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/recording"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/reporting"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/apiErrors"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/log"
)

// ListExpenses lista as despesas, de todos os meses ou do mês informado
func ListExpenses(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := monthParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		expenses, err := service.ListExpenses(year, month)
		if err != nil {
			logger.WithError(err).Error("expenses: erro ao listar despesas")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, expenses)
	})
}

// CreateExpense registra uma nova despesa
func CreateExpense(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input recording.NewExpense
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		expense, err := service.CreateExpense(input)
		if err != nil {
			writeExpenseError(w, logger, err, "expenses: erro ao registrar despesa")
			return
		}

		writeJSON(w, http.StatusCreated, expense)
	})
}

// UpdateExpense substitui a despesa inteira pelo conteúdo enviado
func UpdateExpense(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input recording.NewExpense
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		expense, err := service.UpdateExpense(id, input)
		if err != nil {
			writeExpenseError(w, logger, err, "expenses: erro ao atualizar despesa")
			return
		}

		writeJSON(w, http.StatusOK, expense)
	})
}

// DeleteExpense remove uma despesa pelo id
func DeleteExpense(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteExpense(id); err != nil {
			writeExpenseError(w, logger, err, "expenses: erro ao remover despesa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeExpenseError(w http.ResponseWriter, logger log.Logger, err error, logMsg string) {
	switch {
	case errors.Is(err, recording.ErrExpenseNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, err.Error(), nil)
	case errors.Is(err, recording.ErrMissingName),
		errors.Is(err, recording.ErrInvalidDate),
		errors.Is(err, recording.ErrInvalidKind),
		errors.Is(err, recording.ErrNegativeAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		logger.WithError(err).Error(logMsg)
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, err.Error(), nil)
	}
}
