package domain

import (
	"fmt"
	"sort"
)

var shortMonthNames = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// MonthPeriod é um par (mês, ano) com dados disponíveis no dashboard
type MonthPeriod struct {
	Month int    `json:"mes"`
	Year  int    `json:"ano"`
	Label string `json:"label"`
}

// MonthLabel formata o rótulo curto de um período, ex: "Jul/2024"
func MonthLabel(year, month int) string {
	name := "?"
	if month >= 1 && month <= 12 {
		name = shortMonthNames[month-1]
	}

	return fmt.Sprintf("%s/%d", name, year)
}

// AvailablePeriods lista os meses distintos presentes nas vendas e despesas,
// ordenados do mais recente para o mais antigo
func AvailablePeriods(sales []Sale, expenses []Expense) []MonthPeriod {
	type key struct{ year, month int }
	seen := make(map[key]struct{})

	for _, sale := range sales {
		seen[key{sale.Year, sale.Month}] = struct{}{}
	}
	for _, expense := range expenses {
		seen[key{expense.Year, expense.Month}] = struct{}{}
	}

	periods := make([]MonthPeriod, 0, len(seen))
	for k := range seen {
		periods = append(periods, MonthPeriod{
			Month: k.month,
			Year:  k.year,
			Label: MonthLabel(k.year, k.month),
		})
	}

	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year > periods[j].Year
		}
		return periods[i].Month > periods[j].Month
	})

	return periods
}

// FilterSalesByMonth retorna apenas as vendas do par (ano, mês)
func FilterSalesByMonth(sales []Sale, year, month int) []Sale {
	filtered := make([]Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.Year == year && sale.Month == month {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}

// FilterExpensesByMonth retorna apenas as despesas do par (ano, mês)
func FilterExpensesByMonth(expenses []Expense, year, month int) []Expense {
	filtered := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Year == year && expense.Month == month {
			filtered = append(filtered, expense)
		}
	}

	return filtered
}
