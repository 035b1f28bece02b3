// Package petclient is a typed client for the pet store HTTP API.
package petclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"petstore/internal/httpclient"
	"petstore/internal/logging"
	"petstore/internal/petstore"
)

type Client struct {
	http   *httpclient.Client
	logger logging.Logger
}

// Page is one page of ListPets. Next is empty on the last page.
type Page struct {
	Pets []petstore.Pet
	Next string
}

// New creates a client. baseURL includes the API base path, e.g.
// "http://localhost:3000/v1".
func New(baseURL string, timeout time.Duration, logger logging.Logger) (*Client, error) {
	httpCli, err := httpclient.New(baseURL, timeout, logger.With("component", "petstore_http"))
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   httpCli,
		logger: logger,
	}, nil
}

// CreatePet stores p and returns the Location of the new pet.
func (c *Client) CreatePet(ctx context.Context, p petstore.Pet) (string, error) {
	h, err := c.http.Do(ctx, http.MethodPost, "/pets", nil, p, nil)
	if err != nil {
		return "", err
	}
	return h.Get("Location"), nil
}

// ListPets fetches one page. A zero limit lets the server return every pet.
func (c *Client) ListPets(ctx context.Context, limit int32, cursor string) (Page, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.FormatInt(int64(limit), 10))
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	var pets []petstore.Pet
	h, err := c.http.Do(ctx, http.MethodGet, "/pets", query, nil, &pets)
	if err != nil {
		return Page{}, err
	}
	return Page{Pets: pets, Next: h.Get("x-next")}, nil
}

// ListAllPets follows x-next until the last page.
func (c *Client) ListAllPets(ctx context.Context, pageSize int32) ([]petstore.Pet, error) {
	var (
		all    []petstore.Pet
		cursor string
	)
	for {
		page, err := c.ListPets(ctx, pageSize, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Pets...)
		if page.Next == "" || page.Next == cursor {
			return all, nil
		}
		cursor = page.Next
	}
}

func (c *Client) ShowPet(ctx context.Context, id int64) (petstore.Pet, error) {
	var p petstore.Pet
	_, err := c.http.Do(ctx, http.MethodGet, "/pets/"+strconv.FormatInt(id, 10), nil, nil, &p)
	return p, err
}

func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

func IsConflict(err error) bool { return hasStatus(err, http.StatusConflict) }

func hasStatus(err error, status int) bool {
	var httpErr *httpclient.HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == status
}
