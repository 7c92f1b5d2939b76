package domain

// Profile guarda os dados do usuário do dashboard. Os totais acumulados são
// recalculados a partir das coleções completas após qualquer mutação.
type Profile struct {
	Name        string  `json:"nome"`
	Avatar      string  `json:"avatar,omitempty"`
	MonthlyGoal float64 `json:"metaMensal,omitempty"`
	TotalEarned float64 `json:"totalFaturado"`
	TotalSpent  float64 `json:"totalGasto"`
}

// DefaultProfile é o perfil usado quando nada foi persistido ainda
func DefaultProfile() Profile {
	return Profile{Name: "Usuário"}
}

// RefreshTotals recalcula os acumulados do perfil sobre todas as vendas e
// despesas, sem arredondamento intermediário
func (p *Profile) RefreshTotals(sales []Sale, expenses []Expense) {
	var earned, spent float64
	for _, sale := range sales {
		earned += sale.NetAmount
	}
	for _, expense := range expenses {
		spent += expense.Amount
	}

	p.TotalEarned = earned
	p.TotalSpent = spent
}
