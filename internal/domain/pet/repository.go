package pet

import (
	"context"

	"petstore/internal/domain/common"
)

var (
	ErrNotFound      = common.NewNotFound("pet")
	ErrAlreadyExists = common.NewConflict("pet")
)

// ListFilter selects a window of pets ordered by id. A zero Limit means no
// limit; After, when set, skips every id up to and including it.
type ListFilter struct {
	Limit int
	After *int64
}

type Repository interface {
	Create(ctx context.Context, p *Pet) error
	GetByID(ctx context.Context, id int64) (*Pet, error)
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
}
