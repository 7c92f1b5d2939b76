package domain

import (
	"fmt"
	"time"
)

// DateFilter restringe as coleções a uma janela de datas inclusiva. Quando
// Active é falso ou algum limite está vazio, o filtro é a identidade.
type DateFilter struct {
	StartDate string `json:"dataInicial,omitempty"` // YYYY-MM-DD
	EndDate   string `json:"dataFinal,omitempty"`   // YYYY-MM-DD
	Active    bool   `json:"ativo"`
}

func (f DateFilter) enabled() bool {
	return f.Active && f.StartDate != "" && f.EndDate != ""
}

func (f DateFilter) bounds() (time.Time, time.Time, bool) {
	start, err := time.Parse(time.DateOnly, f.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	end, err := time.Parse(time.DateOnly, f.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func withinBounds(date string, start, end time.Time) bool {
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return false
	}

	return !parsed.Before(start) && !parsed.After(end)
}

// FilterSalesByDate retorna as vendas dentro da janela do filtro. A
// comparação é sobre datas parseadas, nunca lexicográfica.
func FilterSalesByDate(sales []Sale, filter DateFilter) []Sale {
	if !filter.enabled() {
		return sales
	}

	start, end, ok := filter.bounds()
	if !ok {
		return sales
	}

	filtered := make([]Sale, 0, len(sales))
	for _, sale := range sales {
		if withinBounds(sale.Date, start, end) {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}

// FilterExpensesByDate retorna as despesas dentro da janela do filtro
func FilterExpensesByDate(expenses []Expense, filter DateFilter) []Expense {
	if !filter.enabled() {
		return expenses
	}

	start, end, ok := filter.bounds()
	if !ok {
		return expenses
	}

	filtered := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		if withinBounds(expense.Date, start, end) {
			filtered = append(filtered, expense)
		}
	}

	return filtered
}

// FormatPeriod monta o rótulo do período exibido nos relatórios: o rótulo do
// mês quando o filtro está inativo, ou "dd/mm/aaaa - dd/mm/aaaa" quando ativo.
func FormatPeriod(filter DateFilter, monthLabel string) string {
	if !filter.enabled() {
		return monthLabel
	}

	start, end, ok := filter.bounds()
	if !ok {
		return monthLabel
	}

	return fmt.Sprintf("%s - %s", start.Format("02/01/2006"), end.Format("02/01/2006"))
}
