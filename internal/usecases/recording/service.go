package recording

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/repository"
	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/storage"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/utils"
)

var (
	ErrInvalidDate    = errors.New("data inválida, use o formato YYYY-MM-DD")
	ErrNegativeAmount = errors.New("valor não pode ser negativo")
	ErrInvalidKind    = errors.New("tipo de despesa inválido")
	ErrMissingName    = errors.New("nome da despesa é obrigatório")
)

// NewSale é a entrada de uma venda manual. Ano, mês, id e createdAt são
// derivados no registro, nunca informados pelo chamador.
type NewSale struct {
	Date        string            `json:"data"`
	GrossAmount float64           `json:"valorBruto"`
	NetAmount   float64           `json:"valorLiquido"`
	Origin      domain.SaleOrigin `json:"origem"`
}

// NewExpense é a entrada de criação/atualização de uma despesa
type NewExpense struct {
	Name         string             `json:"nome"`
	Amount       float64            `json:"valor"`
	Kind         domain.ExpenseKind `json:"tipo"`
	Category     string             `json:"categoria"`
	Date         string             `json:"data"`
	Recurrence   domain.Recurrence  `json:"recorrencia,omitempty"`
	IsInvestment bool               `json:"ehInvestimento,omitempty"`
}

type Recorder interface {
	AddSale(input NewSale) (*domain.Sale, error)
	CreateExpense(input NewExpense) (*domain.Expense, error)
	UpdateExpense(id string, input NewExpense) (*domain.Expense, error)
	DeleteExpense(id string) error
	Profile() (*domain.Profile, error)
	ClearAll() error
}

type Service struct {
	store       *storage.Store
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	profileRepo repository.ProfileRepository
}

func NewService(
	store *storage.Store,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	profileRepo repository.ProfileRepository,
) Recorder {
	return &Service{
		store:       store,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		profileRepo: profileRepo,
	}
}

// AddSale registra uma venda manual
func (s *Service) AddSale(input NewSale) (*domain.Sale, error) {
	year, month, err := utils.YearMonth(input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if input.GrossAmount < 0 || input.NetAmount < 0 {
		return nil, ErrNegativeAmount
	}

	origin := input.Origin
	if origin == "" {
		origin = domain.OriginOrganic
	}

	sale := domain.Sale{
		ID:          uuid.NewString(),
		Date:        input.Date,
		Year:        year,
		Month:       month,
		GrossAmount: utils.RoundWithTwoDecimalPlace(input.GrossAmount),
		NetAmount:   utils.RoundWithTwoDecimalPlace(input.NetAmount),
		Origin:      origin,
		Imported:    false,
		CreatedAt:   time.Now(),
	}

	if err := s.saleRepo.AddSales([]domain.Sale{sale}); err != nil {
		return nil, err
	}

	if err := s.refreshProfileTotals(); err != nil {
		return nil, err
	}

	return &sale, nil
}

// CreateExpense registra uma nova despesa
func (s *Service) CreateExpense(input NewExpense) (*domain.Expense, error) {
	expense, err := s.buildExpense(uuid.NewString(), time.Now(), input)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpsertExpense(*expense); err != nil {
		return nil, err
	}

	if err := s.refreshProfileTotals(); err != nil {
		return nil, err
	}

	return expense, nil
}

// UpdateExpense substitui a despesa inteira pelo novo conteúdo, mantendo id
// e createdAt originais
func (s *Service) UpdateExpense(id string, input NewExpense) (*domain.Expense, error) {
	existing, err := s.findExpense(id)
	if err != nil {
		return nil, err
	}

	expense, err := s.buildExpense(existing.ID, existing.CreatedAt, input)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpsertExpense(*expense); err != nil {
		return nil, err
	}

	if err := s.refreshProfileTotals(); err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *Service) DeleteExpense(id string) error {
	if _, err := s.findExpense(id); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(id); err != nil {
		return err
	}

	return s.refreshProfileTotals()
}

func (s *Service) Profile() (*domain.Profile, error) {
	profile, err := s.profileRepo.GetProfile()
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// ClearAll apaga vendas, despesas e perfil de uma vez
func (s *Service) ClearAll() error {
	return repository.ClearAll(s.store)
}

// ErrExpenseNotFound indica id de despesa inexistente
var ErrExpenseNotFound = errors.New("despesa não encontrada")

func (s *Service) findExpense(id string) (*domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses()
	if err != nil {
		return nil, err
	}

	for i := range expenses {
		if expenses[i].ID == id {
			return &expenses[i], nil
		}
	}

	return nil, ErrExpenseNotFound
}

func (s *Service) buildExpense(id string, createdAt time.Time, input NewExpense) (*domain.Expense, error) {
	if input.Name == "" {
		return nil, ErrMissingName
	}

	if input.Amount < 0 {
		return nil, ErrNegativeAmount
	}

	switch input.Kind {
	case domain.KindFixed, domain.KindVariable, domain.KindPersonal:
	default:
		return nil, ErrInvalidKind
	}

	year, month, err := utils.YearMonth(input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &domain.Expense{
		ID:           id,
		Name:         input.Name,
		Amount:       utils.RoundWithTwoDecimalPlace(input.Amount),
		Kind:         input.Kind,
		Category:     input.Category,
		Date:         input.Date,
		Recurrence:   input.Recurrence,
		Year:         year,
		Month:        month,
		CreatedAt:    createdAt,
		IsInvestment: input.IsInvestment,
	}, nil
}

func (s *Service) refreshProfileTotals() error {
	sales, err := s.saleRepo.ListSales()
	if err != nil {
		return err
	}

	expenses, err := s.expenseRepo.ListExpenses()
	if err != nil {
		return err
	}

	profile, err := s.profileRepo.GetProfile()
	if err != nil {
		return err
	}

	profile.RefreshTotals(sales, expenses)

	return s.profileRepo.SaveProfile(profile)
}
