package domain

import "time"

// ExpenseKind é o tipo fechado de despesa. O cálculo de KPIs soma cada
// bucket separadamente, então um valor fora da enumeração não entra em
// nenhum bucket.
type ExpenseKind string

const (
	KindFixed    ExpenseKind = "fixa"
	KindVariable ExpenseKind = "variavel"
	KindPersonal ExpenseKind = "pessoal"
)

// Recurrence só tem significado quando Kind == KindFixed
type Recurrence string

const (
	RecurrenceMonthly Recurrence = "mensal"
	RecurrenceYearly  Recurrence = "anual"
)

// Expense representa uma despesa registrada pelo usuário. Category é um
// rótulo livre usado apenas para agrupamento em gráficos, nunca no cálculo.
type Expense struct {
	ID           string      `json:"id"`
	Name         string      `json:"nome"`
	Amount       float64     `json:"valor"`
	Kind         ExpenseKind `json:"tipo"`
	Category     string      `json:"categoria"`
	Date         string      `json:"data"` // YYYY-MM-DD
	Recurrence   Recurrence  `json:"recorrencia,omitempty"`
	Year         int         `json:"ano"`
	Month        int         `json:"mes"`
	CreatedAt    time.Time   `json:"createdAt"`
	IsInvestment bool        `json:"ehInvestimento,omitempty"`
}
