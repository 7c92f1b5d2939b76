package repository

import (
	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/storage"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
	"github.com/pkg/errors"
)

type ProfileRepository interface {
	GetProfile() (domain.Profile, error)
	SaveProfile(profile domain.Profile) error
}

type profileRepository struct {
	store *storage.Store
}

func NewProfileRepository(store *storage.Store) ProfileRepository {
	return &profileRepository{
		store: store,
	}
}

func (r *profileRepository) GetProfile() (domain.Profile, error) {
	profile := domain.DefaultProfile()
	if err := r.store.Get(storage.KeyProfile, &profile); err != nil {
		return domain.Profile{}, errors.Wrap(err, "erro ao carregar perfil")
	}

	return profile, nil
}

func (r *profileRepository) SaveProfile(profile domain.Profile) error {
	if err := r.store.Set(storage.KeyProfile, profile); err != nil {
		return errors.Wrap(err, "erro ao gravar perfil")
	}

	return nil
}

// ClearAll apaga as três chaves persistidas de uma vez
func ClearAll(store *storage.Store) error {
	err := store.Delete(storage.KeySales, storage.KeyExpenses, storage.KeyProfile)
	if err != nil {
		return errors.Wrap(err, "erro ao limpar os dados")
	}

	return nil
}
