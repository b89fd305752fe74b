package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSwordRepo records the last call and returns canned results.
type fakeSwordRepo struct {
	calls  []string
	sword  *model.Sword
	swords []model.Sword
	err    error
	arg    any
}

func (f *fakeSwordRepo) record(name string, arg any) {
	f.calls = append(f.calls, name)
	f.arg = arg
}

func (f *fakeSwordRepo) Get(_ context.Context, id uuid.UUID) (*model.Sword, error) {
	f.record("Get", id)
	return f.sword, f.err
}

func (f *fakeSwordRepo) GetAll(context.Context) ([]model.Sword, error) {
	f.record("GetAll", nil)
	return f.swords, f.err
}

func (f *fakeSwordRepo) Create(_ context.Context, payload *model.SwordCreate) (*model.Sword, error) {
	f.record("Create", payload)
	return f.sword, f.err
}

func (f *fakeSwordRepo) Update(_ context.Context, id uuid.UUID, payload *model.SwordUpdate) (*model.Sword, error) {
	f.record("Update", payload)
	return f.sword, f.err
}

func (f *fakeSwordRepo) Remove(_ context.Context, id uuid.UUID) (*model.Sword, error) {
	f.record("Remove", id)
	return f.sword, f.err
}

func (f *fakeSwordRepo) GetByInsuranceUUID(_ context.Context, insurance uuid.UUID) (*model.Sword, error) {
	f.record("GetByInsuranceUUID", insurance)
	return f.sword, f.err
}

func (f *fakeSwordRepo) GetByTypeAll(_ context.Context, swordType string) ([]model.Sword, error) {
	f.record("GetByTypeAll", swordType)
	return f.swords, f.err
}

func (f *fakeSwordRepo) GetByConditionAll(_ context.Context, condition model.SwordCondition) ([]model.Sword, error) {
	f.record("GetByConditionAll", condition)
	return f.swords, f.err
}

func (f *fakeSwordRepo) GetByValueAll(_ context.Context, value model.SwordValue) ([]model.Sword, error) {
	f.record("GetByValueAll", value)
	return f.swords, f.err
}

func (f *fakeSwordRepo) GetByRentedAll(_ context.Context, rented bool) ([]model.Sword, error) {
	f.record("GetByRentedAll", rented)
	return f.swords, f.err
}

func (f *fakeSwordRepo) GetByOnSaleAll(_ context.Context, onSale bool) ([]model.Sword, error) {
	f.record("GetByOnSaleAll", onSale)
	return f.swords, f.err
}

func TestSwordService_Forwards(t *testing.T) {
	sword := &model.Sword{UUID: uuid.New(), Type: "Katana"}
	repo := &fakeSwordRepo{sword: sword, swords: []model.Sword{*sword}}
	svc := NewSwordService(repo)
	ctx := context.Background()

	got, err := svc.Get(ctx, sword.UUID)
	require.NoError(t, err)
	assert.Same(t, sword, got)
	assert.Equal(t, sword.UUID, repo.arg)

	create := &model.SwordCreate{Type: "Katana"}
	_, err = svc.Create(ctx, create)
	require.NoError(t, err)
	assert.Same(t, create, repo.arg)

	list, err := svc.GetByConditionAll(ctx, model.SwordConditionGood)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, model.SwordConditionGood, repo.arg)

	_, _ = svc.GetAll(ctx)
	_, _ = svc.Update(ctx, sword.UUID, &model.SwordUpdate{})
	_, _ = svc.Remove(ctx, sword.UUID)
	_, _ = svc.GetByInsuranceUUID(ctx, sword.UUIDInsurance)
	_, _ = svc.GetByTypeAll(ctx, "Katana")
	_, _ = svc.GetByValueAll(ctx, model.SwordValueA)
	_, _ = svc.GetByRentedAll(ctx, true)
	_, _ = svc.GetByOnSaleAll(ctx, false)

	assert.Equal(t, []string{
		"Get", "Create", "GetByConditionAll", "GetAll", "Update", "Remove",
		"GetByInsuranceUUID", "GetByTypeAll", "GetByValueAll", "GetByRentedAll", "GetByOnSaleAll",
	}, repo.calls)
}

func TestSwordService_AbsenceAndErrorsPassThrough(t *testing.T) {
	ctx := context.Background()

	absent := NewSwordService(&fakeSwordRepo{})
	got, err := absent.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)

	storeErr := errors.New("connection refused")
	failing := NewSwordService(&fakeSwordRepo{err: storeErr})
	_, err = failing.Remove(ctx, uuid.New())
	assert.ErrorIs(t, err, storeErr)
}

type fakePersonRepo struct {
	calls  []string
	person *model.Person
}

func (f *fakePersonRepo) Get(context.Context, uuid.UUID) (*model.Person, error) {
	f.calls = append(f.calls, "Get")
	return f.person, nil
}

func (f *fakePersonRepo) GetAll(context.Context) ([]model.Person, error) {
	f.calls = append(f.calls, "GetAll")
	return nil, nil
}

func (f *fakePersonRepo) Create(context.Context, *model.PersonCreate) (*model.Person, error) {
	f.calls = append(f.calls, "Create")
	return f.person, nil
}

func (f *fakePersonRepo) Update(context.Context, uuid.UUID, *model.PersonUpdate) (*model.Person, error) {
	f.calls = append(f.calls, "Update")
	return f.person, nil
}

func (f *fakePersonRepo) Remove(context.Context, uuid.UUID) (*model.Person, error) {
	f.calls = append(f.calls, "Remove")
	return f.person, nil
}

func (f *fakePersonRepo) GetByDocumentNumber(context.Context, uuid.UUID) (*model.Person, error) {
	f.calls = append(f.calls, "GetByDocumentNumber")
	return f.person, nil
}

func (f *fakePersonRepo) GetByNameAll(context.Context, string) ([]model.Person, error) {
	f.calls = append(f.calls, "GetByNameAll")
	return nil, nil
}

func (f *fakePersonRepo) GetBySurnameAll(context.Context, string) ([]model.Person, error) {
	f.calls = append(f.calls, "GetBySurnameAll")
	return nil, nil
}

func TestPersonService_Forwards(t *testing.T) {
	person := &model.Person{UUID: uuid.New(), Name: "Miyamoto"}
	repo := &fakePersonRepo{person: person}
	svc := NewPersonService(repo)
	ctx := context.Background()

	got, err := svc.GetByDocumentNumber(ctx, uuid.New())
	require.NoError(t, err)
	assert.Same(t, person, got)

	_, _ = svc.Get(ctx, person.UUID)
	_, _ = svc.GetAll(ctx)
	_, _ = svc.Create(ctx, &model.PersonCreate{})
	_, _ = svc.Update(ctx, person.UUID, &model.PersonUpdate{})
	_, _ = svc.Remove(ctx, person.UUID)
	_, _ = svc.GetByNameAll(ctx, "Miyamoto")
	_, _ = svc.GetBySurnameAll(ctx, "Musashi")

	assert.Equal(t, []string{
		"GetByDocumentNumber", "Get", "GetAll", "Create", "Update", "Remove", "GetByNameAll", "GetBySurnameAll",
	}, repo.calls)
}
