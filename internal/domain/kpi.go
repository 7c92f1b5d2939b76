package domain

import (
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/utils"
)

// KPIs é o snapshot imutável de indicadores derivado de um conjunto filtrado
// de vendas e despesas. Nunca é persistido: cada mudança de filtro recalcula.
type KPIs struct {
	GrossRevenue             float64 `json:"receitaBruta"`
	NetRevenue               float64 `json:"receitaLiquida"`
	NetProfit                float64 `json:"lucroLiquido"`
	AverageTicket            float64 `json:"ticketMedio"`
	TotalSaleCount           int     `json:"totalVendas"`
	ROI                      float64 `json:"roi"`
	PersonalExpenses         float64 `json:"gastosPessoais"`
	BusinessVariableExpenses float64 `json:"gastosProfissionais"`
	FixedExpenses            float64 `json:"despesasFixas"`
	VariableExpenses         float64 `json:"despesasVariaveis"`
	TotalExpenses            float64 `json:"totalDespesas"`
	TotalInvestment          float64 `json:"investimentoTotal"`
	ROIApplicable            bool    `json:"roiAplicavel"`
}

// CalculateKPIs calcula o snapshot de KPIs a partir das coleções já
// filtradas. Função pura: determinística, sem efeitos colaterais e
// independente da ordem das coleções de entrada.
//
// Fórmula canônica:
//   - receita bruta/líquida: somas diretas sobre as vendas
//   - ticket médio: receita bruta / quantidade de vendas
//   - total de despesas: pessoais + fixas + variáveis
//   - lucro líquido: receita líquida - total de despesas
//   - ROI: (lucro líquido / investimento total) * 100, apenas quando há
//     despesas marcadas como investimento
func CalculateKPIs(sales []Sale, expenses []Expense) KPIs {
	var grossRevenue, netRevenue float64
	for _, sale := range sales {
		grossRevenue += sale.GrossAmount
		netRevenue += sale.NetAmount
	}

	totalSaleCount := len(sales)

	averageTicket := 0.0
	if totalSaleCount > 0 {
		averageTicket = grossRevenue / float64(totalSaleCount)
	}

	var personal, fixed, variable, investment float64
	for _, expense := range expenses {
		switch expense.Kind {
		case KindPersonal:
			personal += expense.Amount
		case KindFixed:
			fixed += expense.Amount
		case KindVariable:
			variable += expense.Amount
		}

		// Investimento direto independe do tipo da despesa
		if expense.IsInvestment {
			investment += expense.Amount
		}
	}

	totalExpenses := personal + fixed + variable
	netProfit := netRevenue - totalExpenses

	roiApplicable := investment > 0
	roi := 0.0
	if roiApplicable {
		roi = (netProfit / investment) * 100
	}

	return KPIs{
		GrossRevenue:             utils.RoundWithTwoDecimalPlace(grossRevenue),
		NetRevenue:               utils.RoundWithTwoDecimalPlace(netRevenue),
		NetProfit:                utils.RoundWithTwoDecimalPlace(netProfit),
		AverageTicket:            utils.RoundWithTwoDecimalPlace(averageTicket),
		TotalSaleCount:           totalSaleCount,
		ROI:                      utils.RoundWithTwoDecimalPlace(roi),
		PersonalExpenses:         utils.RoundWithTwoDecimalPlace(personal),
		BusinessVariableExpenses: utils.RoundWithTwoDecimalPlace(variable),
		FixedExpenses:            utils.RoundWithTwoDecimalPlace(fixed),
		VariableExpenses:         utils.RoundWithTwoDecimalPlace(variable),
		TotalExpenses:            utils.RoundWithTwoDecimalPlace(totalExpenses),
		TotalInvestment:          utils.RoundWithTwoDecimalPlace(investment),
		ROIApplicable:            roiApplicable,
	}
}
