// Package stub is a stateless pet store that answers every operation with a
// fixed response. It is useful for contract tests and load testing the
// transport without a database.
package stub

import (
	"context"

	"petstore/internal/petstore"
)

type stub struct{}

func New() petstore.API {
	return stub{}
}

func (stub) CreatePets(ctx context.Context, req petstore.RequestInfo, body petstore.Pet) (petstore.CreatePetsResponse, error) {
	return petstore.CreatePets201Response{}, nil
}

func (stub) ListPets(ctx context.Context, req petstore.RequestInfo, params petstore.ListPetsParams) (petstore.ListPetsResponse, error) {
	return petstore.ListPets200JSONResponse{Body: []petstore.Pet{}}, nil
}

func (stub) ShowPetByID(ctx context.Context, req petstore.RequestInfo, params petstore.ShowPetByIDParams) (petstore.ShowPetByIDResponse, error) {
	return petstore.ShowPetByID200JSONResponse{ID: 1, Name: "pet"}, nil
}
