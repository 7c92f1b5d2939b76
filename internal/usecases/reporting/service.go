package reporting

import (
	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/repository"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/log"
)

// Dashboard é a visão derivada servida ao painel: snapshot de KPIs e o
// rótulo do período que o gerou
type Dashboard struct {
	KPIs   domain.KPIs       `json:"kpis"`
	Period string            `json:"periodo"`
	Filter domain.DateFilter `json:"filtro"`
}

type Reporter interface {
	Dashboard(year, month int, filter domain.DateFilter) (*Dashboard, error)
	FilteredRecords(year, month int, filter domain.DateFilter) ([]domain.Sale, []domain.Expense, error)
	ListSales(year, month int) ([]domain.Sale, error)
	ListExpenses(year, month int) ([]domain.Expense, error)
	AvailablePeriods() ([]domain.MonthPeriod, error)
}

type Service struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
) Reporter {
	return &Service{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
	}
}

// Dashboard recalcula o snapshot de KPIs para o mês selecionado, aplicando
// o filtro de datas por cima quando ativo. O snapshot nunca é persistido:
// toda chamada recomputa a partir do que está armazenado.
func (s *Service) Dashboard(year, month int, filter domain.DateFilter) (*Dashboard, error) {
	sales, expenses, err := s.FilteredRecords(year, month, filter)
	if err != nil {
		return nil, err
	}

	kpis := domain.CalculateKPIs(sales, expenses)

	log.L.WithFields(log.Fields{
		"year":          year,
		"month":         month,
		"sales_count":   len(sales),
		"expense_count": len(expenses),
	}).Debug("dashboard: KPIs recalculados")

	return &Dashboard{
		KPIs:   kpis,
		Period: domain.FormatPeriod(filter, domain.MonthLabel(year, month)),
		Filter: filter,
	}, nil
}

// FilteredRecords aplica a mesma cadeia de filtros usada pelo dashboard e
// pela exportação: igualdade de (ano, mês) e depois a janela de datas
func (s *Service) FilteredRecords(year, month int, filter domain.DateFilter) ([]domain.Sale, []domain.Expense, error) {
	sales, err := s.ListSales(year, month)
	if err != nil {
		return nil, nil, err
	}

	expenses, err := s.ListExpenses(year, month)
	if err != nil {
		return nil, nil, err
	}

	return domain.FilterSalesByDate(sales, filter), domain.FilterExpensesByDate(expenses, filter), nil
}

// ListSales lista as vendas do mês, ou todas quando year/month são zero
func (s *Service) ListSales(year, month int) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales()
	if err != nil {
		return nil, err
	}

	if year == 0 && month == 0 {
		return sales, nil
	}

	return domain.FilterSalesByMonth(sales, year, month), nil
}

// ListExpenses lista as despesas do mês, ou todas quando year/month são zero
func (s *Service) ListExpenses(year, month int) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses()
	if err != nil {
		return nil, err
	}

	if year == 0 && month == 0 {
		return expenses, nil
	}

	return domain.FilterExpensesByMonth(expenses, year, month), nil
}

// AvailablePeriods lista os meses com dados, do mais recente para o mais antigo
func (s *Service) AvailablePeriods() ([]domain.MonthPeriod, error) {
	sales, err := s.saleRepo.ListSales()
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpenses()
	if err != nil {
		return nil, err
	}

	return domain.AvailablePeriods(sales, expenses), nil
}
