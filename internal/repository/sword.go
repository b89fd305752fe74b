package repository

import (
	"context"

	"github.com/deppfellow/legendary-swords/internal/database"
	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/google/uuid"
)

var swordsTable = Table{
	Name:     "swords",
	Columns:  model.SwordColumns,
	IDColumn: "uuid",
	OrderBy:  []string{"created_at", "uuid"},
}

// SwordRepository stores swords.
type SwordRepository struct {
	*CRUDBase[model.Sword, *model.SwordCreate, *model.SwordUpdate]
}

func NewSwordRepository(db database.Querier) *SwordRepository {
	return &SwordRepository{
		CRUDBase: NewCRUDBase[model.Sword, *model.SwordCreate, *model.SwordUpdate](db, swordsTable),
	}
}

func (r *SwordRepository) GetByInsuranceUUID(ctx context.Context, insurance uuid.UUID) (*model.Sword, error) {
	return r.GetBy(ctx, "uuid_insurance", insurance)
}

func (r *SwordRepository) GetByTypeAll(ctx context.Context, swordType string) ([]model.Sword, error) {
	return r.GetAllBy(ctx, "sword_type", swordType)
}

func (r *SwordRepository) GetByConditionAll(ctx context.Context, condition model.SwordCondition) ([]model.Sword, error) {
	return r.GetAllBy(ctx, "sword_condition", string(condition))
}

func (r *SwordRepository) GetByValueAll(ctx context.Context, value model.SwordValue) ([]model.Sword, error) {
	return r.GetAllBy(ctx, "sword_value", string(value))
}

func (r *SwordRepository) GetByRentedAll(ctx context.Context, rented bool) ([]model.Sword, error) {
	return r.GetAllBy(ctx, "rented", rented)
}

func (r *SwordRepository) GetByOnSaleAll(ctx context.Context, onSale bool) ([]model.Sword, error) {
	return r.GetAllBy(ctx, "on_sale", onSale)
}
