package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	testdb "github.com/solacecommunity/agent-mesh-gateway/test/database"
)

type countingConverter struct {
	calls int
	pdf   []byte
	err   error
}

func (c *countingConverter) Convert(_ context.Context, _ []byte, _ string) ([]byte, error) {
	c.calls++
	return c.pdf, c.err
}

func TestDocConversion(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	doc := []byte("fake docx bytes")
	pdf := []byte("%PDF-1.7 fake")

	t.Run("converts and caches by content hash", func(t *testing.T) {
		conv := &countingConverter{pdf: pdf}
		svc := services.NewDocConversionService(client.Client, conv)

		out, err := svc.ToPDF(ctx, doc, ".DOCX")
		require.NoError(t, err)
		assert.Equal(t, pdf, out)
		assert.Equal(t, 1, conv.calls)

		// Same bytes again: served from cache, converter untouched.
		out, err = svc.ToPDF(ctx, doc, "docx")
		require.NoError(t, err)
		assert.Equal(t, pdf, out)
		assert.Equal(t, 1, conv.calls)

		// Same bytes under a different extension are a separate cache entry.
		_, err = svc.ToPDF(ctx, doc, "odt")
		require.NoError(t, err)
		assert.Equal(t, 2, conv.calls)
	})

	t.Run("pdf input passes through", func(t *testing.T) {
		conv := &countingConverter{}
		svc := services.NewDocConversionService(client.Client, conv)

		out, err := svc.ToPDF(ctx, pdf, "pdf")
		require.NoError(t, err)
		assert.Equal(t, pdf, out)
		assert.Equal(t, 0, conv.calls)
	})

	t.Run("validation", func(t *testing.T) {
		svc := services.NewDocConversionService(client.Client, &countingConverter{})

		_, err := svc.ToPDF(ctx, nil, "docx")
		assert.True(t, services.IsValidationError(err))

		_, err = svc.ToPDF(ctx, doc, "")
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("converter failure", func(t *testing.T) {
		svc := services.NewDocConversionService(client.Client, &countingConverter{err: errors.New("soffice missing")})

		_, err := svc.ToPDF(ctx, []byte("other doc"), "xlsx")
		assert.ErrorContains(t, err, "document conversion failed")
	})
}
