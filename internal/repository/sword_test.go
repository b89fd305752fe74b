package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwordRepository_Filters(t *testing.T) {
	sword := katana()
	orderBy := " ORDER BY created_at, uuid"

	tests := []struct {
		name   string
		where  string
		arg    any
		filter func(r *SwordRepository) ([]model.Sword, error)
	}{
		{
			name:  "type",
			where: " WHERE sword_type = $1",
			arg:   "Katana",
			filter: func(r *SwordRepository) ([]model.Sword, error) {
				return r.GetByTypeAll(context.Background(), "Katana")
			},
		},
		{
			name:  "condition",
			where: " WHERE sword_condition = $1",
			arg:   "excellent",
			filter: func(r *SwordRepository) ([]model.Sword, error) {
				return r.GetByConditionAll(context.Background(), model.SwordConditionExcellent)
			},
		},
		{
			name:  "value",
			where: " WHERE sword_value = $1",
			arg:   "A",
			filter: func(r *SwordRepository) ([]model.Sword, error) {
				return r.GetByValueAll(context.Background(), model.SwordValueA)
			},
		},
		{
			name:  "rented",
			where: " WHERE rented = $1",
			arg:   false,
			filter: func(r *SwordRepository) ([]model.Sword, error) {
				return r.GetByRentedAll(context.Background(), false)
			},
		},
		{
			name:  "on sale",
			where: " WHERE on_sale = $1",
			arg:   false,
			filter: func(r *SwordRepository) ([]model.Sword, error) {
				return r.GetByOnSaleAll(context.Background(), false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery(regexp.QuoteMeta(swordSelect + tt.where + orderBy)).
				WithArgs(tt.arg).
				WillReturnRows(swordRows(sword))

			got, err := tt.filter(NewSwordRepository(mock))

			require.NoError(t, err)
			assert.Equal(t, []model.Sword{sword}, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSwordRepository_GetByInsuranceUUID(t *testing.T) {
	sword := katana()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(swordSelect + " WHERE uuid_insurance = $1 ORDER BY created_at, uuid LIMIT 1")).
		WithArgs(sword.UUIDInsurance).
		WillReturnRows(swordRows(sword))
	mock.ExpectQuery(`uuid_insurance`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(swordRows())

	repo := NewSwordRepository(mock)

	got, err := repo.GetByInsuranceUUID(context.Background(), sword.UUIDInsurance)
	require.NoError(t, err)
	assert.Equal(t, &sword, got)

	missing, err := repo.GetByInsuranceUUID(context.Background(), sword.UUID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, mock.ExpectationsWereMet())
}
