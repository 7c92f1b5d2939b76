package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// YearMonth extrai o par (ano, mês) de uma data YYYY-MM-DD
func YearMonth(dateStr string) (int, int, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return 0, 0, err
	}

	return date.Year(), int(date.Month()), nil
}
