package service

import (
	"context"

	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/google/uuid"
)

// SwordRepository is what SwordService needs from storage.
type SwordRepository interface {
	CRUDRepository[model.Sword, *model.SwordCreate, *model.SwordUpdate]
	GetByInsuranceUUID(ctx context.Context, insurance uuid.UUID) (*model.Sword, error)
	GetByTypeAll(ctx context.Context, swordType string) ([]model.Sword, error)
	GetByConditionAll(ctx context.Context, condition model.SwordCondition) ([]model.Sword, error)
	GetByValueAll(ctx context.Context, value model.SwordValue) ([]model.Sword, error)
	GetByRentedAll(ctx context.Context, rented bool) ([]model.Sword, error)
	GetByOnSaleAll(ctx context.Context, onSale bool) ([]model.Sword, error)
}

type SwordService struct {
	*CRUDService[model.Sword, *model.SwordCreate, *model.SwordUpdate]
	repo SwordRepository
}

func NewSwordService(repo SwordRepository) *SwordService {
	return &SwordService{
		CRUDService: NewCRUDService[model.Sword, *model.SwordCreate, *model.SwordUpdate](repo),
		repo:        repo,
	}
}

func (s *SwordService) GetByInsuranceUUID(ctx context.Context, insurance uuid.UUID) (*model.Sword, error) {
	return s.repo.GetByInsuranceUUID(ctx, insurance)
}

func (s *SwordService) GetByTypeAll(ctx context.Context, swordType string) ([]model.Sword, error) {
	return s.repo.GetByTypeAll(ctx, swordType)
}

func (s *SwordService) GetByConditionAll(ctx context.Context, condition model.SwordCondition) ([]model.Sword, error) {
	return s.repo.GetByConditionAll(ctx, condition)
}

func (s *SwordService) GetByValueAll(ctx context.Context, value model.SwordValue) ([]model.Sword, error) {
	return s.repo.GetByValueAll(ctx, value)
}

func (s *SwordService) GetByRentedAll(ctx context.Context, rented bool) ([]model.Sword, error) {
	return s.repo.GetByRentedAll(ctx, rented)
}

func (s *SwordService) GetByOnSaleAll(ctx context.Context, onSale bool) ([]model.Sword, error) {
	return s.repo.GetByOnSaleAll(ctx, onSale)
}
