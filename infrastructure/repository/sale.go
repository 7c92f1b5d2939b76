package repository

import (
	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/storage"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
	"github.com/pkg/errors"
)

type SaleRepository interface {
	ListSales() ([]domain.Sale, error)
	AddSales(sales []domain.Sale) error
	ReplaceSalesForMonth(year, month int, sales []domain.Sale) error
}

type saleRepository struct {
	store *storage.Store
}

func NewSaleRepository(store *storage.Store) SaleRepository {
	return &saleRepository{
		store: store,
	}
}

func (r *saleRepository) ListSales() ([]domain.Sale, error) {
	sales := []domain.Sale{}
	if err := r.store.Get(storage.KeySales, &sales); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar vendas")
	}

	return sales, nil
}

func (r *saleRepository) AddSales(sales []domain.Sale) error {
	existing, err := r.ListSales()
	if err != nil {
		return err
	}

	return r.save(append(existing, sales...))
}

// ReplaceSalesForMonth descarta as vendas do mês informado e grava as novas
// no lugar. É a operação usada pela importação de CSV: reimportar um mês
// substitui o que havia nele.
func (r *saleRepository) ReplaceSalesForMonth(year, month int, sales []domain.Sale) error {
	existing, err := r.ListSales()
	if err != nil {
		return err
	}

	kept := make([]domain.Sale, 0, len(existing)+len(sales))
	for _, sale := range existing {
		if !(sale.Year == year && sale.Month == month) {
			kept = append(kept, sale)
		}
	}

	return r.save(append(kept, sales...))
}

func (r *saleRepository) save(sales []domain.Sale) error {
	if err := r.store.Set(storage.KeySales, sales); err != nil {
		return errors.Wrap(err, "erro ao gravar vendas")
	}

	return nil
}
