package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Imported rows are not validated, so free-form project columns carry no
// length limit in the table.
func TestProject_FreeFormColumnsAreText(t *testing.T) {
	s, err := schema.Parse(&Project{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, column := range []string{"title", "location", "capacity", "description", "client_name", "project_type"} {
		field := s.LookUpField(column)
		require.NotNil(t, field, column)
		assert.Equal(t, schema.DataType("text"), field.DataType, column)
	}
	assert.True(t, s.LookUpField("project_type").NotNull)
}
