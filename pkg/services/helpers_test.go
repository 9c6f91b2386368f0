package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/models"
)

func TestClampPagination(t *testing.T) {
	p, err := clampPagination(models.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 20, p.PageSize)

	p, err = clampPagination(models.Pagination{PageNumber: 3, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 3, p.PageNumber)
	assert.Equal(t, 100, p.PageSize)

	_, err = clampPagination(models.Pagination{PageNumber: -2})
	assert.True(t, IsValidationError(err))
}

func TestValidSessionID(t *testing.T) {
	assert.True(t, validSessionID("session-1"))
	assert.False(t, validSessionID(""))
	assert.False(t, validSessionID("null"))
	assert.False(t, validSessionID("undefined"))
}
