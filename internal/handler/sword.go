package handler

import (
	"context"
	"strconv"

	"github.com/deppfellow/legendary-swords/internal/errs"
	"github.com/deppfellow/legendary-swords/internal/model"
	"github.com/deppfellow/legendary-swords/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const entitySword = "Sword"

// SwordService is the part of the service layer the sword endpoints use.
type SwordService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Sword, error)
	GetAll(ctx context.Context) ([]model.Sword, error)
	Create(ctx context.Context, payload *model.SwordCreate) (*model.Sword, error)
	Update(ctx context.Context, id uuid.UUID, payload *model.SwordUpdate) (*model.Sword, error)
	Remove(ctx context.Context, id uuid.UUID) (*model.Sword, error)
	GetByInsuranceUUID(ctx context.Context, insurance uuid.UUID) (*model.Sword, error)
	GetByTypeAll(ctx context.Context, swordType string) ([]model.Sword, error)
	GetByConditionAll(ctx context.Context, condition model.SwordCondition) ([]model.Sword, error)
	GetByValueAll(ctx context.Context, value model.SwordValue) ([]model.Sword, error)
	GetByRentedAll(ctx context.Context, rented bool) ([]model.Sword, error)
	GetByOnSaleAll(ctx context.Context, onSale bool) ([]model.Sword, error)
}

type SwordHandler struct {
	Handler
	swords SwordService
}

func NewSwordHandler(h Handler, swords SwordService) *SwordHandler {
	return &SwordHandler{Handler: h, swords: swords}
}

// SwordIDRequest addresses a sword by its primary key.
type SwordIDRequest struct {
	UUID uuid.UUID `param:"uuid"`
}

func (r *SwordIDRequest) Validate() error { return nil }

// SwordInsuranceRequest addresses a sword by its insurance UUID.
type SwordInsuranceRequest struct {
	UUIDInsurance uuid.UUID `param:"uuid_insurance"`
}

func (r *SwordInsuranceRequest) Validate() error { return nil }

// UpdateSwordRequest carries the path identifier and the partial update.
type UpdateSwordRequest struct {
	UUID uuid.UUID `param:"uuid" json:"-"`
	model.SwordUpdate
}

// ListSwordsRequest selects at most one exact-match filter. Empty values
// count as not given.
type ListSwordsRequest struct {
	Type      string `query:"type"`
	Condition string `query:"condition"`
	Value     string `query:"value"`
	Rented    string `query:"rented"`
	OnSale    string `query:"on_sale"`

	rented bool
	onSale bool
}

func (r *ListSwordsRequest) Validate() error {
	var problems validation.CustomValidationErrors

	if countSet(r.Type, r.Condition, r.Value, r.Rented, r.OnSale) > 1 {
		problems = append(problems, validation.CustomValidationError{
			Field:   "query",
			Message: "at most one of type, condition, value, rented, on_sale may be given",
		})
	}
	if r.Condition != "" && !model.SwordCondition(r.Condition).Valid() {
		problems = append(problems, validation.CustomValidationError{
			Field:   "condition",
			Message: "must be one of: falling_apart shabby not_bad good very_worn_out excellent",
		})
	}
	if r.Value != "" && !model.SwordValue(r.Value).Valid() {
		problems = append(problems, validation.CustomValidationError{Field: "value", Message: "must be one of: A B C D E"})
	}
	if r.Rented != "" {
		v, err := strconv.ParseBool(r.Rented)
		if err != nil {
			problems = append(problems, validation.CustomValidationError{Field: "rented", Message: "must be true or false"})
		}
		r.rented = v
	}
	if r.OnSale != "" {
		v, err := strconv.ParseBool(r.OnSale)
		if err != nil {
			problems = append(problems, validation.CustomValidationError{Field: "on_sale", Message: "must be true or false"})
		}
		r.onSale = v
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

func countSet(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}

func (h *SwordHandler) CreateSword(c echo.Context, req *model.SwordCreate) (*model.Sword, error) {
	sword, err := h.swords.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	if sword == nil {
		return nil, errs.NewBadRequestError("Could not create sword.", nil, nil)
	}
	return sword, nil
}

func (h *SwordHandler) ListSwords(c echo.Context, req *ListSwordsRequest) ([]model.Sword, error) {
	ctx := c.Request().Context()

	switch {
	case req.Type != "":
		return h.swords.GetByTypeAll(ctx, req.Type)
	case req.Condition != "":
		return h.swords.GetByConditionAll(ctx, model.SwordCondition(req.Condition))
	case req.Value != "":
		return h.swords.GetByValueAll(ctx, model.SwordValue(req.Value))
	case req.Rented != "":
		return h.swords.GetByRentedAll(ctx, req.rented)
	case req.OnSale != "":
		return h.swords.GetByOnSaleAll(ctx, req.onSale)
	default:
		return h.swords.GetAll(ctx)
	}
}

func (h *SwordHandler) GetSword(c echo.Context, req *SwordIDRequest) (*model.Sword, error) {
	sword, err := h.swords.Get(c.Request().Context(), req.UUID)
	return orNotFound(sword, err, entitySword, req.UUID)
}

func (h *SwordHandler) GetSwordByInsurance(c echo.Context, req *SwordInsuranceRequest) (*model.Sword, error) {
	sword, err := h.swords.GetByInsuranceUUID(c.Request().Context(), req.UUIDInsurance)
	return orNotFound(sword, err, entitySword, req.UUIDInsurance)
}

func (h *SwordHandler) UpdateSword(c echo.Context, req *UpdateSwordRequest) (*model.Sword, error) {
	sword, err := h.swords.Update(c.Request().Context(), req.UUID, &req.SwordUpdate)
	return orNotFound(sword, err, entitySword, req.UUID)
}

func (h *SwordHandler) DeleteSword(c echo.Context, req *SwordIDRequest) (*model.Sword, error) {
	sword, err := h.swords.Remove(c.Request().Context(), req.UUID)
	return orNotFound(sword, err, entitySword, req.UUID)
}
