package petstore

import (
	"go/parser"
	"go/token"
	"math"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_EncodeFailureLeavesResponseUnwritten(t *testing.T) {
	rec := httptest.NewRecorder()

	err := writeJSON(rec, 200, math.NaN())

	require.Error(t, err)
	assert.False(t, rec.Flushed)
	assert.Empty(t, rec.Header().Get("Content-Type"))
	assert.Zero(t, rec.Body.Len())
}

func TestContractDoesNotImportTransport(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err)

		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			assert.False(t, strings.HasPrefix(path, "petstore/internal/"),
				"%s imports %s", name, path)
		}
	}
}
