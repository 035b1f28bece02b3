package apidocs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"petstore/internal/petstore"
)

func TestDocIsRegistered(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger  string                    `json:"swagger"`
		BasePath string                    `json:"basePath"`
		Info     struct{ Version string }  `json:"info"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, petstore.BasePath, doc.BasePath)
	assert.Equal(t, petstore.APIVersion, doc.Info.Version)

	require.Contains(t, doc.Paths, "/pets")
	assert.Contains(t, doc.Paths["/pets"], "get")
	assert.Contains(t, doc.Paths["/pets"], "post")
	require.Contains(t, doc.Paths, "/pets/{petId}")
	assert.Contains(t, doc.Paths["/pets/{petId}"], "get")
	assert.Contains(t, doc.Paths, "/health")
}
