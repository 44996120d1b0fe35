package services

import (
	"errors"
	"fmt"

	"github.com/TiGG-TV/Realtime/internal/catalog"
	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService interface {
	Get(id string) (*models.Profile, error)
	List(category models.Category, userID string) ([]models.Profile, error)
	Create(profile *models.Profile) error
}

type profileService struct {
	repo repositories.ProfileRepository
}

// NewProfileService resolves built-in personas first and falls back to the
// stored custom ones.
func NewProfileService(repo repositories.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Get(id string) (*models.Profile, error) {
	if p, ok := catalog.ByID(id); ok {
		return &p, nil
	}

	p, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

// List returns the built-in personas followed by the user's own. An empty
// category matches all of them.
func (s *profileService) List(category models.Category, userID string) ([]models.Profile, error) {
	var profiles []models.Profile
	if category == "" {
		profiles = catalog.All()
	} else {
		profiles = catalog.ByCategory(category)
	}

	if userID == "" {
		return profiles, nil
	}

	custom, err := s.repo.FindByOwner(userID, category)
	if err != nil {
		return nil, err
	}

	return append(profiles, custom...), nil
}

func (s *profileService) Create(profile *models.Profile) error {
	if _, ok := catalog.ByID(profile.ID); ok {
		return fmt.Errorf("%w %q: id is reserved by a built-in profile", models.ErrInvalidProfile, profile.ID)
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	return s.repo.Create(profile)
}
