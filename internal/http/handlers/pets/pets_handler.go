package pets

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"petstore/internal/http/binding"
	"petstore/internal/http/responses"
	"petstore/internal/logging"
	"petstore/internal/petstore"
)

// Handler binds the pets routes to a petstore.API:
// decode, validate, invoke, then let the response variant encode itself.
type Handler struct {
	api      petstore.API
	validate *binding.Validator
	logger   logging.Logger
}

func NewHandler(api petstore.API, logger logging.Logger) *Handler {
	return &Handler{
		api:      api,
		validate: binding.NewValidator(),
		logger:   logger.With("component", "pets_http_handler"),
	}
}

// Routes mounts the pets operations on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{petId}", h.Show)
}

// Create godoc
// @Summary     Create a pet
// @Tags        pets
// @Accept      json
// @Param       pet body petstore.Pet true "Pet to add"
// @Success     201 "Null response"
// @Header      201 {string} Location "URL of the new pet"
// @Failure     400 {object} responses.ErrorResponse
// @Failure     409 {object} petstore.Error
// @Failure     503 {object} petstore.Error
// @Router      /pets [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body petstore.Pet
	if !binding.BindAndValidate(w, r, h.validate, &body) {
		return
	}

	resp, err := h.api.CreatePets(r.Context(), requestInfo(r), body)
	if err != nil {
		h.fail(w, r, "createPets", err)
		return
	}

	h.encode(w, r, "createPets", resp.VisitCreatePetsResponse)
}

// List godoc
// @Summary     List all pets
// @Tags        pets
// @Produce     json
// @Param       limit  query int    false "How many items to return at one time (max 100)" minimum(1) maximum(100)
// @Param       cursor query string false "x-next value of the previous page"
// @Success     200 {array} petstore.Pet
// @Header      200 {string} x-next "A link to the next page of responses"
// @Failure     400 {object} responses.ErrorResponse
// @Failure     503 {object} petstore.Error
// @Router      /pets [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params, err := listParams(r)
	if err != nil {
		responses.WriteText(w, http.StatusBadRequest, err.Error())
		return
	}
	if !binding.Validate(w, h.validate, &params) {
		return
	}

	resp, err := h.api.ListPets(r.Context(), requestInfo(r), params)
	if err != nil {
		h.fail(w, r, "listPets", err)
		return
	}

	h.encode(w, r, "listPets", resp.VisitListPetsResponse)
}

// Show godoc
// @Summary     Info for a specific pet
// @Tags        pets
// @Produce     json
// @Param       petId path string true "The id of the pet to retrieve"
// @Success     200 {object} petstore.Pet
// @Failure     400 {object} petstore.Error
// @Failure     404 {object} petstore.Error
// @Failure     503 {object} petstore.Error
// @Router      /pets/{petId} [get]
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	params := petstore.ShowPetByIDParams{PetID: chi.URLParam(r, "petId")}
	if !binding.Validate(w, h.validate, &params) {
		return
	}

	resp, err := h.api.ShowPetByID(r.Context(), requestInfo(r), params)
	if err != nil {
		h.fail(w, r, "showPetById", err)
		return
	}

	h.encode(w, r, "showPetById", resp.VisitShowPetByIDResponse)
}

func requestInfo(r *http.Request) petstore.RequestInfo {
	return petstore.RequestInfo{
		Method:  r.Method,
		Host:    r.Host,
		Cookies: r.Cookies(),
	}
}

// listParams reads the optional limit and cursor query parameters. An empty
// value counts as absent.
func listParams(r *http.Request) (petstore.ListPetsParams, error) {
	var params petstore.ListPetsParams
	q := r.URL.Query()

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return params, fmt.Errorf("invalid limit %q: must be an integer", raw)
		}
		limit := int32(n)
		params.Limit = &limit
	}

	if raw := q.Get("cursor"); raw != "" {
		params.Cursor = &raw
	}

	return params, nil
}

// fail handles the API's opaque error channel: a bare 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error("operation failed",
		"operation", op,
		"error", err,
		"request_id", middleware.GetReqID(r.Context()),
	)
	responses.WriteEmpty(w, http.StatusInternalServerError)
}

// encode writes the response variant. If it fails before the status line is
// out, the client gets a bare 500 instead.
func (h *Handler) encode(w http.ResponseWriter, r *http.Request, op string, visit func(http.ResponseWriter) error) {
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	if err := visit(ww); err != nil {
		h.logger.Error("failed to encode response",
			"operation", op,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		if ww.Status() == 0 {
			responses.WriteEmpty(w, http.StatusInternalServerError)
		}
	}
}
