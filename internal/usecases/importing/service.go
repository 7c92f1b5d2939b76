package importing

import (
	"github.com/pkg/errors"

	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/repository"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/log"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/utils"
)

// ErrNoValidSales indica que o arquivo não continha nenhuma linha de venda
// reconhecível (por exemplo, só cabeçalho e linha de totais)
var ErrNoValidSales = errors.New("nenhuma venda válida encontrada no arquivo")

// ImportResult resume um lote importado com sucesso
type ImportResult struct {
	BatchID       string `json:"loteId"`
	ImportedCount int    `json:"vendasImportadas"`
	Year          int    `json:"ano"`
	Month         int    `json:"mes"`
}

type Importer interface {
	ImportCSV(content string, year, month int) (*ImportResult, error)
}

type Service struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	profileRepo repository.ProfileRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	profileRepo repository.ProfileRepository,
) *Service {
	return &Service{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		profileRepo: profileRepo,
	}
}

// ImportCSV faz o parse do arquivo e, apenas se ele for válido do início ao
// fim, substitui as vendas do mês alvo pelo lote novo. Uma falha de parse
// deixa o armazenamento exatamente como estava.
func (s *Service) ImportCSV(content string, year, month int) (*ImportResult, error) {
	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do lote")
	}

	logger := log.L.WithFields(log.Fields{
		"batch_id": batchID,
		"year":     year,
		"month":    month,
	})

	sales, err := ParseCSV(content)
	if err != nil {
		logger.WithError(err).Warn("importação rejeitada")
		return nil, err
	}

	if len(sales) == 0 {
		logger.Warn("importação sem vendas válidas")
		return nil, ErrNoValidSales
	}

	if err := s.saleRepo.ReplaceSalesForMonth(year, month, sales); err != nil {
		return nil, err
	}

	if err := s.refreshProfileTotals(); err != nil {
		return nil, err
	}

	logger.WithField("imported_count", len(sales)).Info("lote de vendas importado")

	return &ImportResult{
		BatchID:       batchID,
		ImportedCount: len(sales),
		Year:          year,
		Month:         month,
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
