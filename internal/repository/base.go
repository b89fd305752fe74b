package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/deppfellow/legendary-swords/internal/database"
	"github.com/deppfellow/legendary-swords/internal/sqlerr"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Creatable is a creation payload that knows the row it inserts.
type Creatable interface {
	InsertMap() map[string]any
}

// Patch is an update payload that knows which columns it overwrites.
// An empty map means nothing to change.
type Patch interface {
	UpdateMap() map[string]any
}

// Table describes where an entity lives.
type Table struct {
	Name     string
	Columns  []string
	IDColumn string
	// OrderBy gives list queries insertion order.
	OrderBy []string
}

func (t Table) returning() string {
	return "RETURNING " + strings.Join(t.Columns, ", ")
}

// builder renders $n placeholders for PostgreSQL.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CRUDBase implements get, list, create, update and remove for entity E
// created from C and patched with U.
//
// Absence is never an error: lookups that match nothing return nil, nil.
// A returned error means the store could not be reached or failed.
type CRUDBase[E any, C Creatable, U Patch] struct {
	db    database.Querier
	table Table
}

// NewCRUDBase creates a repository for table using db outside of a session.
func NewCRUDBase[E any, C Creatable, U Patch](db database.Querier, table Table) *CRUDBase[E, C, U] {
	return &CRUDBase[E, C, U]{db: db, table: table}
}

// q returns the session transaction when ctx carries one.
func (r *CRUDBase[E, C, U]) q(ctx context.Context) database.Querier {
	return database.QuerierFromCtx(ctx, r.db)
}

func (r *CRUDBase[E, C, U]) selectBuilder() sq.SelectBuilder {
	return builder.Select(r.table.Columns...).From(r.table.Name).OrderBy(r.table.OrderBy...)
}

// getOne runs a query expected to return at most one row.
func (r *CRUDBase[E, C, U]) getOne(ctx context.Context, query sq.Sqlizer) (*E, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", r.table.Name, err)
	}

	var entity E
	if err := pgxscan.Get(ctx, r.q(ctx), &entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query %s: %w", r.table.Name, err)
	}

	return &entity, nil
}

func (r *CRUDBase[E, C, U]) list(ctx context.Context, query sq.Sqlizer) ([]E, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", r.table.Name, err)
	}

	entities := []E{}
	if err := pgxscan.Select(ctx, r.q(ctx), &entities, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table.Name, err)
	}

	return entities, nil
}

// Get returns the entity with the given identifier, nil when absent.
func (r *CRUDBase[E, C, U]) Get(ctx context.Context, id uuid.UUID) (*E, error) {
	return r.GetBy(ctx, r.table.IDColumn, id)
}

// GetAll returns every entity in insertion order.
func (r *CRUDBase[E, C, U]) GetAll(ctx context.Context) ([]E, error) {
	return r.list(ctx, r.selectBuilder())
}

// GetBy returns the first entity whose column equals value.
func (r *CRUDBase[E, C, U]) GetBy(ctx context.Context, column string, value any) (*E, error) {
	return r.getOne(ctx, r.selectBuilder().Where(sq.Eq{column: value}).Limit(1))
}

// GetAllBy returns every entity whose column equals value, in insertion order.
func (r *CRUDBase[E, C, U]) GetAllBy(ctx context.Context, column string, value any) ([]E, error) {
	return r.list(ctx, r.selectBuilder().Where(sq.Eq{column: value}))
}

// Create inserts a new entity.
//
// When PostgreSQL rejects the row (duplicate unique key, failed check, out
// of range value) Create logs the reason and returns nil, nil.
func (r *CRUDBase[E, C, U]) Create(ctx context.Context, payload C) (*E, error) {
	query := builder.Insert(r.table.Name).
		SetMap(payload.InsertMap()).
		Suffix(r.table.returning())

	entity, err := r.getOne(ctx, query)
	if err != nil {
		if sqlerr.IsRejection(err) {
			zerolog.Ctx(ctx).Warn().
				Err(err).
				Str("table", r.table.Name).
				Str("sqlerr_code", string(sqlerr.ErrCode(err))).
				Msg("store rejected insert")
			return nil, nil
		}
		return nil, err
	}

	return entity, nil
}

// Update overwrites the columns present in payload and returns the result.
// An empty payload returns the stored entity unchanged.
func (r *CRUDBase[E, C, U]) Update(ctx context.Context, id uuid.UUID, payload U) (*E, error) {
	set := payload.UpdateMap()
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	query := builder.Update(r.table.Name).
		SetMap(set).
		Where(sq.Eq{r.table.IDColumn: id}).
		Suffix(r.table.returning())

	return r.getOne(ctx, query)
}

// Remove deletes the entity and returns its last state.
func (r *CRUDBase[E, C, U]) Remove(ctx context.Context, id uuid.UUID) (*E, error) {
	query := builder.Delete(r.table.Name).
		Where(sq.Eq{r.table.IDColumn: id}).
		Suffix(r.table.returning())

	return r.getOne(ctx, query)
}
