package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	nf := fmt.Errorf("repo: %w", NewNotFound("pet"))
	cf := fmt.Errorf("repo: %w", NewConflict("pet"))
	un := fmt.Errorf("repo: %w", NewUnavailable(context.DeadlineExceeded))

	assert.True(t, IsNotFound(nf))
	assert.False(t, IsNotFound(cf))
	assert.True(t, IsConflict(cf))
	assert.True(t, IsUnavailable(un))
	assert.False(t, IsUnavailable(nf))

	assert.True(t, errors.Is(un, context.DeadlineExceeded))
	assert.Equal(t, "pet not found", NewNotFound("pet").Error())
	assert.Equal(t, "pet already exists", NewConflict("pet").Error())
}
