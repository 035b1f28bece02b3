// Package petstore is the contract of the pet store API: the resource model,
// per-operation parameters, the closed set of responses each operation can
// produce, and the API interface that backing stores implement.
package petstore

import (
	"context"
	"net/http"
)

const (
	BasePath   = "/v1"
	APIVersion = "1.0.0"
)

// RequestInfo carries the parts of the inbound request that every operation
// receives regardless of its own parameters.
type RequestInfo struct {
	Method  string
	Host    string
	Cookies []*http.Cookie
}

// Cookie returns the named cookie, or nil.
func (ri RequestInfo) Cookie(name string) *http.Cookie {
	for _, c := range ri.Cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// API is implemented by every backing store.
//
// The error return should not occur in normal operation: anything the caller
// can act on is expressed as a response variant. A non-nil error is turned
// into a bare 500 by the transport.
type API interface {
	// CreatePets - POST /v1/pets
	CreatePets(ctx context.Context, req RequestInfo, body Pet) (CreatePetsResponse, error)
	// ListPets - GET /v1/pets
	ListPets(ctx context.Context, req RequestInfo, params ListPetsParams) (ListPetsResponse, error)
	// ShowPetByID - GET /v1/pets/{petId}
	ShowPetByID(ctx context.Context, req RequestInfo, params ShowPetByIDParams) (ShowPetByIDResponse, error)
}
