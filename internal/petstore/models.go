package petstore

// Pet ids are positive, so every id prints as the digits that petId and
// cursor accept.
type Pet struct {
	ID   int64   `json:"id" validate:"gt=0"`
	Name string  `json:"name" validate:"required"`
	Tag  *string `json:"tag,omitempty"`
}

type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// ListPetsParams are the query parameters of ListPets.
type ListPetsParams struct {
	// How many items to return at one time (max 100).
	Limit *int32 `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	// Cursor is the x-next value of a previous page.
	Cursor *string `json:"cursor,omitempty" validate:"omitempty,number"`
}

// ShowPetByIDParams are the path parameters of ShowPetByID.
type ShowPetByIDParams struct {
	PetID string `json:"petId" validate:"required,number"`
}

// NewError builds the error body for the given status.
func NewError(status int, message string) Error {
	return Error{Code: int32(status), Message: message}
}
