// Package business gerencia o perfil do negócio criado no intake
package business

import (
	"fmt"

	"github.com/vfg2006/marketmate-api/infrastructure/repository"
	"github.com/vfg2006/marketmate-api/internal/domain"
	"github.com/vfg2006/marketmate-api/pkg/utils"
)

// ProfileManager gerencia o ciclo de vida do perfil de negócio
type ProfileManager interface {
	// SaveProfile valida e grava o perfil; gera o id na primeira gravação
	SaveProfile(profile *domain.BusinessProfile) (*domain.BusinessProfile, error)

	// GetProfile busca o perfil; ausência é um estado válido (nil, nil)
	GetProfile(businessID string) (*domain.BusinessProfile, error)
}

type Service struct {
	profileRepo repository.BusinessProfileRepository
}

func NewService(profileRepo repository.BusinessProfileRepository) ProfileManager {
	return &Service{
		profileRepo: profileRepo,
	}
}

func (s *Service) SaveProfile(profile *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	missing := make([]string, 0, 3)
	if profile.BusinessName == "" {
		missing = append(missing, "businessName")
	}
	if profile.Industry == "" {
		missing = append(missing, "industry")
	}
	if profile.Services == "" {
		missing = append(missing, "services")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldError{Fields: missing}
	}

	if profile.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do negócio: %w", err)
		}
		profile.ID = fmt.Sprintf("biz_%s", id)
	}

	if err := s.profileRepo.SaveOrUpdate(profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveProfile, err)
	}

	return profile, nil
}

func (s *Service) GetProfile(businessID string) (*domain.BusinessProfile, error) {
	profile, err := s.profileRepo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchProfile, err)
	}

	return profile, nil
}
