package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldConstants(t *testing.T) {
	assert.Equal(t, "file_path", FieldFile)
	assert.Equal(t, "session_id", FieldSession)
	assert.Equal(t, "category", FieldCategory)
	assert.Equal(t, "count", FieldCount)
	assert.Equal(t, "row", FieldRow)
	assert.Equal(t, "error", FieldError)
}
