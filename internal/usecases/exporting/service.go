package exporting

import (
	"fmt"
	"strings"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/reporting"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/utils"
)

// Report é o arquivo pronto para download. Quem serve o conteúdo (navegador,
// endpoint HTTP) é um colaborador externo deste pacote.
type Report struct {
	Filename string
	Content  string
}

type Exporter interface {
	ExportCSV(year, month int, filter domain.DateFilter) (*Report, error)
}

type Service struct {
	reporter reporting.Reporter
}

func NewService(reporter reporting.Reporter) Exporter {
	return &Service{
		reporter: reporter,
	}
}

// ExportCSV monta o relatório em três seções (KPIs, vendas, despesas) sobre
// exatamente os mesmos registros filtrados que o dashboard exibe
func (s *Service) ExportCSV(year, month int, filter domain.DateFilter) (*Report, error) {
	sales, expenses, err := s.reporter.FilteredRecords(year, month, filter)
	if err != nil {
		return nil, err
	}

	kpis := domain.CalculateKPIs(sales, expenses)
	period := domain.FormatPeriod(filter, domain.MonthLabel(year, month))

	return &Report{
		Filename: fmt.Sprintf("relatorio-financeiro-%04d-%02d.csv", year, month),
		Content:  FormatCSV(sales, expenses, kpis, period),
	}, nil
}

// FormatCSV serializa o relatório. Todos os campos saem entre aspas e os
// valores monetários com o prefixo de moeda e duas casas.
func FormatCSV(sales []domain.Sale, expenses []domain.Expense, kpis domain.KPIs, period string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\"RELATÓRIO FINANCEIRO - %s\"\n\n", period)

	b.WriteString("\"INDICADORES (KPIs)\"\n")
	fmt.Fprintf(&b, "\"Receita Bruta\",\"%s\"\n", utils.FormatBRL(kpis.GrossRevenue))
	fmt.Fprintf(&b, "\"Lucro Líquido\",\"%s\"\n", utils.FormatBRL(kpis.NetProfit))
	fmt.Fprintf(&b, "\"Ticket Médio\",\"%s\"\n", utils.FormatBRL(kpis.AverageTicket))
	fmt.Fprintf(&b, "\"Total de Vendas\",\"%d\"\n", kpis.TotalSaleCount)
	fmt.Fprintf(&b, "\"ROI\",\"%.2f%%\"\n", kpis.ROI)
	fmt.Fprintf(&b, "\"Gastos Pessoais\",\"%s\"\n", utils.FormatBRL(kpis.PersonalExpenses))
	fmt.Fprintf(&b, "\"Gastos Profissionais\",\"%s\"\n\n", utils.FormatBRL(kpis.BusinessVariableExpenses))

	b.WriteString("\"VENDAS\"\n")
	b.WriteString("\"Data\",\"Valor Bruto\",\"Valor Líquido\",\"Origem\",\"Importada\"\n")
	for _, sale := range sales {
		imported := "Não"
		if sale.Imported {
			imported = "Sim"
		}

		fmt.Fprintf(&b, "\"%s\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
			sale.Date,
			utils.FormatBRL(sale.GrossAmount),
			utils.FormatBRL(sale.NetAmount),
			sale.Origin,
			imported,
		)
	}

	b.WriteString("\n\"DESPESAS\"\n")
	b.WriteString("\"Nome\",\"Valor\",\"Tipo\",\"Categoria\",\"Data\"\n")
	for _, expense := range expenses {
		fmt.Fprintf(&b, "\"%s\",\"%s\",\"%s\",\"%s\",\"%s\"\n",
			expense.Name,
			utils.FormatBRL(expense.Amount),
			expense.Kind,
			expense.Category,
			expense.Date,
		)
	}

	return b.String()
}
