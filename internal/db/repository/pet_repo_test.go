package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petstore/internal/db"
	dom "petstore/internal/domain/pet"
	"petstore/internal/logging"
)

func newRepo(t *testing.T) (dom.Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	client := db.NewClientFromDB(mockDB, 0, logging.NewNop())
	return NewPetRepository(client, logging.NewNop()), mock
}

func strPtr(s string) *string { return &s }

func TestCreate_InsertsRow(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "pets"`)).
		WithArgs(int64(7), "Rex", "puppy").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &dom.Pet{ID: 7, Name: "Rex", Tag: strPtr("puppy")})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateKey(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "pets"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	err := repo.Create(context.Background(), &dom.Pet{ID: 7, Name: "Rex"})

	assert.ErrorIs(t, err, dom.ErrAlreadyExists)
}

func TestCreate_OtherErrorsAreWrapped(t *testing.T) {
	repo, mock := newRepo(t)

	cause := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "pets"`)).WillReturnError(cause)

	err := repo.Create(context.Background(), &dom.Pet{ID: 7, Name: "Rex"})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, dom.ErrAlreadyExists)
}

func TestGetByID_Found(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM "pets" WHERE "id" = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tag"}).AddRow(int64(3), "Tom", nil))

	p, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, &dom.Pet{ID: 3, Name: "Tom"}, p)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "pets"`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tag"}))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, dom.ErrNotFound)
}

func TestList_AllRowsOrdered(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM "pets" ORDER BY "?id"?`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tag"}).
			AddRow(int64(1), "Rex", "dog").
			AddRow(int64(2), "Tom", nil))

	pets, err := repo.List(context.Background(), dom.ListFilter{})

	require.NoError(t, err)
	assert.Equal(t, []dom.Pet{
		{ID: 1, Name: "Rex", Tag: strPtr("dog")},
		{ID: 2, Name: "Tom"},
	}, pets)
}

func TestList_WindowAfterCursor(t *testing.T) {
	repo, mock := newRepo(t)

	after := int64(10)
	mock.ExpectQuery(`WHERE "id" > \$1 ORDER BY "?id"? LIMIT 3`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tag"}).AddRow(int64(11), "Bo", nil))

	pets, err := repo.List(context.Background(), dom.ListFilter{Limit: 3, After: &after})

	require.NoError(t, err)
	assert.Len(t, pets, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyIsNotNil(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "pets"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tag"}))

	pets, err := repo.List(context.Background(), dom.ListFilter{})

	require.NoError(t, err)
	assert.NotNil(t, pets)
	assert.Empty(t, pets)
}
