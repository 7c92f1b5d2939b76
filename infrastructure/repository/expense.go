package repository

import (
	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/storage"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
	"github.com/pkg/errors"
)

type ExpenseRepository interface {
	ListExpenses() ([]domain.Expense, error)
	UpsertExpense(expense domain.Expense) error
	DeleteExpense(id string) error
}

type expenseRepository struct {
	store *storage.Store
}

func NewExpenseRepository(store *storage.Store) ExpenseRepository {
	return &expenseRepository{
		store: store,
	}
}

func (r *expenseRepository) ListExpenses() ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	if err := r.store.Get(storage.KeyExpenses, &expenses); err != nil {
		return nil, errors.Wrap(err, "erro ao carregar despesas")
	}

	return expenses, nil
}

// UpsertExpense grava a despesa completa: atualiza pelo ID quando já existe,
// senão acrescenta. Nunca faz merge parcial de campos.
func (r *expenseRepository) UpsertExpense(expense domain.Expense) error {
	expenses, err := r.ListExpenses()
	if err != nil {
		return err
	}

	updated := false
	for i := range expenses {
		if expenses[i].ID == expense.ID {
			expenses[i] = expense
			updated = true
			break
		}
	}

	if !updated {
		expenses = append(expenses, expense)
	}

	return r.save(expenses)
}

func (r *expenseRepository) DeleteExpense(id string) error {
	expenses, err := r.ListExpenses()
	if err != nil {
		return err
	}

	kept := make([]domain.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.ID != id {
			kept = append(kept, expense)
		}
	}

	return r.save(kept)
}

func (r *expenseRepository) save(expenses []domain.Expense) error {
	if err := r.store.Set(storage.KeyExpenses, expenses); err != nil {
		return errors.Wrap(err, "erro ao gravar despesas")
	}

	return nil
}
