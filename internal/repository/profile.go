package repository

import (
	"sync"

	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
)

type ProfileRepository interface {
	GetProfileByID(id string) (*models.Profile, error)
	GetAllProfiles() ([]models.Profile, error)
}

// profileRepository serves the user directory. There is no create
// path here: registration happens in the auth service, and for this
// MVP the directory is seeded at startup.
type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]models.Profile
}

func NewProfileRepository(seed ...models.Profile) ProfileRepository {
	profiles := make(map[string]models.Profile, len(seed))
	for _, p := range seed {
		profiles[p.ID] = p
	}
	return &profileRepository{profiles: profiles}
}

func (r *profileRepository) GetProfileByID(id string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &profile, nil
}

func (r *profileRepository) GetAllProfiles() ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, p)
	}
	return profiles, nil
}
