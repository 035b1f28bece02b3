package pet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"petstore/internal/cache"
	domcommon "petstore/internal/domain/common"
	dom "petstore/internal/domain/pet"
	"petstore/internal/logging"
	"petstore/internal/petstore"
)

const DefaultCacheTTL = 5 * time.Minute

type service struct {
	repo     dom.Repository
	cache    cache.PetCache
	cacheTTL time.Duration
	events   Events
	logger   logging.Logger
}

var _ petstore.API = (*service)(nil)

func (s *service) CreatePets(ctx context.Context, req petstore.RequestInfo, body petstore.Pet) (petstore.CreatePetsResponse, error) {
	p := toDomain(body)

	if err := s.repo.Create(ctx, p); err != nil {
		switch {
		case domcommon.IsConflict(err):
			return petstore.CreatePets409JSONResponse(petstore.NewError(http.StatusConflict,
				fmt.Sprintf("pet %d already exists", p.ID))), nil
		case domcommon.IsUnavailable(err):
			s.logger.Warn("store unavailable on create", "error", err, "id", p.ID)
			return petstore.CreatePetsDefaultJSONResponse{
				StatusCode: http.StatusServiceUnavailable,
				Body:       petstore.NewError(http.StatusServiceUnavailable, "store unavailable"),
			}, nil
		}
		s.logger.Error("failed to create pet", "error", err, "id", p.ID)
		return nil, fmt.Errorf("create pet: %w", err)
	}

	created := toContract(p)
	s.cachePet(ctx, created)

	if err := s.events.PetCreated(ctx, created); err != nil {
		s.logger.Error("failed to publish PetCreated event", "error", err, "id", created.ID)
	}

	return petstore.CreatePets201Response{Location: petstore.PetLocation(created.ID)}, nil
}

func (s *service) ListPets(ctx context.Context, req petstore.RequestInfo, params petstore.ListPetsParams) (petstore.ListPetsResponse, error) {
	var filter dom.ListFilter

	if params.Cursor != nil {
		after, err := strconv.ParseInt(*params.Cursor, 10, 64)
		if err != nil {
			return petstore.ListPetsDefaultJSONResponse{
				StatusCode: http.StatusBadRequest,
				Body:       petstore.NewError(http.StatusBadRequest, "invalid cursor"),
			}, nil
		}
		filter.After = &after
	}

	limit := 0
	if params.Limit != nil {
		limit = int(*params.Limit)
		// One extra row tells us whether another page exists.
		filter.Limit = limit + 1
	}

	pets, err := s.repo.List(ctx, filter)
	if err != nil {
		if domcommon.IsUnavailable(err) {
			s.logger.Warn("store unavailable on list", "error", err)
			return petstore.ListPetsDefaultJSONResponse{
				StatusCode: http.StatusServiceUnavailable,
				Body:       petstore.NewError(http.StatusServiceUnavailable, "store unavailable"),
			}, nil
		}
		s.logger.Error("failed to list pets", "error", err)
		return nil, fmt.Errorf("list pets: %w", err)
	}

	resp := petstore.ListPets200JSONResponse{}
	if limit > 0 && len(pets) > limit {
		pets = pets[:limit]
		next := strconv.FormatInt(pets[len(pets)-1].ID, 10)
		resp.Next = &next
	}
	resp.Body = toContracts(pets)

	return resp, nil
}

func (s *service) ShowPetByID(ctx context.Context, req petstore.RequestInfo, params petstore.ShowPetByIDParams) (petstore.ShowPetByIDResponse, error) {
	id, err := strconv.ParseInt(params.PetID, 10, 64)
	if err != nil {
		return petstore.ShowPetByID400JSONResponse(petstore.NewError(http.StatusBadRequest,
			fmt.Sprintf("invalid pet id %q", params.PetID))), nil
	}

	// 1) Check cache
	if data, err := s.cache.GetByID(ctx, id); err != nil {
		s.logger.Error("failed to get pet from cache", "error", err, "id", id)
	} else if data != nil {
		var cached petstore.Pet
		if err := json.Unmarshal(data, &cached); err != nil {
			s.logger.Error("failed to unmarshal pet from cache", "error", err, "id", id)
		} else {
			return petstore.ShowPetByID200JSONResponse(cached), nil
		}
	}

	// 2) Fallback to the store
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		switch {
		case domcommon.IsNotFound(err):
			return petstore.ShowPetByID404JSONResponse(petstore.NewError(http.StatusNotFound,
				fmt.Sprintf("pet %d not found", id))), nil
		case domcommon.IsUnavailable(err):
			s.logger.Warn("store unavailable on show", "error", err, "id", id)
			return petstore.ShowPetByIDDefaultJSONResponse{
				StatusCode: http.StatusServiceUnavailable,
				Body:       petstore.NewError(http.StatusServiceUnavailable, "store unavailable"),
			}, nil
		}
		s.logger.Error("failed to get pet", "error", err, "id", id)
		return nil, fmt.Errorf("get pet %d: %w", id, err)
	}

	found := toContract(p)

	// 3) Write to cache (best-effort)
	s.cachePet(ctx, found)

	return petstore.ShowPetByID200JSONResponse(found), nil
}

func (s *service) cachePet(ctx context.Context, p petstore.Pet) {
	data, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("failed to marshal pet for cache", "error", err, "id", p.ID)
		return
	}
	if err := s.cache.Set(ctx, p.ID, data, s.cacheTTL); err != nil {
		s.logger.Error("failed to set pet cache", "error", err, "id", p.ID)
	}
}

// NewService builds the store-backed API. A nil cache or events falls back
// to the no-op implementation; a zero ttl uses DefaultCacheTTL.
func NewService(
	repo dom.Repository,
	petCache cache.PetCache,
	cacheTTL time.Duration,
	events Events,
	logger logging.Logger,
) petstore.API {
	if petCache == nil {
		petCache = cache.NoopPetCache{}
	}
	if events == nil {
		events = NoopEvents{}
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:     repo,
		cache:    petCache,
		cacheTTL: cacheTTL,
		events:   events,
		logger:   logger.With("component", "pet_service"),
	}
}
