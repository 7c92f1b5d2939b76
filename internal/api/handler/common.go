package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("erro ao codificar resposta")
	}
}

// monthParams lê os parâmetros year/month. Ambos ausentes significa "sem
// filtro de mês" (0, 0); presentes, precisam ser válidos.
func monthParams(r *http.Request) (int, int, error) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr == "" && monthStr == "" {
		return 0, 0, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, errors.Errorf("ano inválido: %s", yearStr)
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.Errorf("mês inválido: %s", monthStr)
	}

	return year, month, nil
}

// requiredMonthParams é como monthParams, mas rejeita a ausência do par
func requiredMonthParams(r *http.Request) (int, int, error) {
	year, month, err := monthParams(r)
	if err != nil {
		return 0, 0, err
	}

	if year == 0 && month == 0 {
		return 0, 0, errors.New("é necessário informar ano e mês nos parâmetros")
	}

	return year, month, nil
}

// dateFilterParams monta o filtro de datas a partir de start_date/end_date.
// O filtro só é ativado quando os dois limites estão presentes.
func dateFilterParams(r *http.Request) domain.DateFilter {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	return domain.DateFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Active:    startDate != "" && endDate != "",
	}
}
