package binding

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    int64   `json:"id" validate:"gt=0"`
	Name  string  `json:"name" validate:"required"`
	Limit *int32  `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Code  string  `json:"code,omitempty" validate:"omitempty,number"`
	Note  *string `json:"-"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestBindAndValidate_OK(t *testing.T) {
	rec := httptest.NewRecorder()
	var dst sample

	ok := BindAndValidate(rec, post(`{"id":1,"name":"rex"}`), NewValidator(), &dst)

	require.True(t, ok)
	assert.Equal(t, sample{ID: 1, Name: "rex"}, dst)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBindAndValidate_DecodeErrorsArePlainText(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"id":`,
		"unknown field": `{"id":1,"name":"a","color":"red"}`,
		"wrong type":    `{"id":"one","name":"a"}`,
		"empty":         ``,
		"trailing":      `{"id":1,"name":"a"}{}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			var dst sample

			ok := BindAndValidate(rec, post(body), NewValidator(), &dst)

			assert.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
			assert.NotEmpty(t, rec.Body.String())
		})
	}
}

func TestBindAndValidate_ValidationNamesJSONField(t *testing.T) {
	rec := httptest.NewRecorder()
	var dst sample

	ok := BindAndValidate(rec, post(`{"id":1}`), NewValidator(), &dst)

	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Code    int          `json:"code"`
		Message string       `json:"message"`
		Details []FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 400, body.Code)
	assert.Equal(t, "validation failed", body.Message)
	require.Len(t, body.Details, 1)
	assert.Equal(t, FieldError{Field: "name", Rule: "required", Message: "name is required"}, body.Details[0])
}

func TestValidator_Rules(t *testing.T) {
	v := NewValidator()
	zero := int32(0)

	details, err := v.Struct(sample{ID: 1, Name: "a", Limit: &zero, Code: "12x"})
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "limit must be at least 1", details[0].Message)
	assert.Equal(t, "code", details[1].Field)
	assert.Equal(t, "number", details[1].Rule)
}

func TestValidator_NonPositiveID(t *testing.T) {
	v := NewValidator()

	for _, id := range []int64{0, -5} {
		details, err := v.Struct(sample{ID: id, Name: "a"})
		require.NoError(t, err)
		require.Len(t, details, 1, "id %d", id)
		assert.Equal(t, FieldError{Field: "id", Rule: "gt", Message: "id must be greater than 0"}, details[0])
	}
}

func TestValidator_NotAStruct(t *testing.T) {
	_, err := NewValidator().Struct(42)
	assert.Error(t, err)
}
