package petstore

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Every operation has a closed set of responses. Each variant writes itself
// to the wire through the operation's Visit method, so a variant without an
// encoding does not compile.

type CreatePetsResponse interface {
	VisitCreatePetsResponse(w http.ResponseWriter) error
}

// CreatePets201Response is the null response: no body.
type CreatePets201Response struct {
	Location string
}

func (r CreatePets201Response) VisitCreatePetsResponse(w http.ResponseWriter) error {
	if r.Location != "" {
		w.Header().Set("Location", r.Location)
	}
	w.WriteHeader(http.StatusCreated)
	return nil
}

// CreatePets409JSONResponse reports an id that is already taken.
type CreatePets409JSONResponse Error

func (r CreatePets409JSONResponse) VisitCreatePetsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusConflict, Error(r))
}

// CreatePetsDefaultJSONResponse is the unexpected error response.
type CreatePetsDefaultJSONResponse struct {
	StatusCode int
	Body       Error
}

func (r CreatePetsDefaultJSONResponse) VisitCreatePetsResponse(w http.ResponseWriter) error {
	return writeJSON(w, defaultStatus(r.StatusCode), r.Body)
}

type ListPetsResponse interface {
	VisitListPetsResponse(w http.ResponseWriter) error
}

// ListPets200JSONResponse is a paged array of pets. Next, when set, is sent
// as the x-next header.
type ListPets200JSONResponse struct {
	Body []Pet
	Next *string
}

func (r ListPets200JSONResponse) VisitListPetsResponse(w http.ResponseWriter) error {
	if r.Next != nil {
		w.Header().Set("x-next", *r.Next)
	}
	body := r.Body
	if body == nil {
		body = []Pet{}
	}
	return writeJSON(w, http.StatusOK, body)
}

type ListPetsDefaultJSONResponse struct {
	StatusCode int
	Body       Error
}

func (r ListPetsDefaultJSONResponse) VisitListPetsResponse(w http.ResponseWriter) error {
	return writeJSON(w, defaultStatus(r.StatusCode), r.Body)
}

type ShowPetByIDResponse interface {
	VisitShowPetByIDResponse(w http.ResponseWriter) error
}

// ShowPetByID200JSONResponse is the expected response to a valid request.
type ShowPetByID200JSONResponse Pet

func (r ShowPetByID200JSONResponse) VisitShowPetByIDResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, Pet(r))
}

// ShowPetByID400JSONResponse reports a pet id the store cannot interpret.
type ShowPetByID400JSONResponse Error

func (r ShowPetByID400JSONResponse) VisitShowPetByIDResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, Error(r))
}

type ShowPetByID404JSONResponse Error

func (r ShowPetByID404JSONResponse) VisitShowPetByIDResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, Error(r))
}

type ShowPetByIDDefaultJSONResponse struct {
	StatusCode int
	Body       Error
}

func (r ShowPetByIDDefaultJSONResponse) VisitShowPetByIDResponse(w http.ResponseWriter) error {
	return writeJSON(w, defaultStatus(r.StatusCode), r.Body)
}

// writeJSON encodes v before touching w, so a failed encoding leaves the
// response unwritten.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// defaultStatus maps the "any other status" code 0 to 500.
func defaultStatus(code int) int {
	if code < 100 || code > 599 {
		return http.StatusInternalServerError
	}
	return code
}

// PetLocation is the canonical URL path of a pet.
func PetLocation(id int64) string {
	return BasePath + "/pets/" + strconv.FormatInt(id, 10)
}
