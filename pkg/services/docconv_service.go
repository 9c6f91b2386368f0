package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/solacecommunity/agent-mesh-gateway/ent"
	"github.com/solacecommunity/agent-mesh-gateway/ent/docconversioncache"
)

// Conversion timing bounds. The output-file poll backs off exponentially
// because office converters write the PDF after the process exits.
const (
	convWallClockTimeout = 30 * time.Second
	convSubprocessMax    = 60 * time.Second
	convPollInitial      = 200 * time.Millisecond
	convPollMax          = 2 * time.Second
	convPollAttempts     = 10
)

// Converter turns one office document into PDF bytes. Implementations run
// an external converter; tests substitute a fake.
type Converter interface {
	Convert(ctx context.Context, input []byte, extension string) ([]byte, error)
}

// DocConversionService converts office documents to PDF with a
// content-hash cache in front of the converter.
type DocConversionService struct {
	client    *ent.Client
	converter Converter
}

// NewDocConversionService creates a new DocConversionService.
func NewDocConversionService(client *ent.Client, converter Converter) *DocConversionService {
	return &DocConversionService{client: client, converter: converter}
}

// ToPDF returns the PDF for input, serving from cache when possible.
func (s *DocConversionService) ToPDF(ctx context.Context, input []byte, extension string) ([]byte, error) {
	if len(input) == 0 {
		return nil, NewValidationError("document", "required")
	}
	extension = strings.TrimPrefix(strings.ToLower(extension), ".")
	if extension == "" {
		return nil, NewValidationError("extension", "required")
	}
	if extension == "pdf" {
		return input, nil
	}

	hash := contentHash(input)
	if pdf, ok := s.lookupCache(ctx, hash, extension); ok {
		return pdf, nil
	}

	convCtx, cancel := context.WithTimeout(ctx, convWallClockTimeout)
	defer cancel()

	pdf, err := s.converter.Convert(convCtx, input, extension)
	if err != nil {
		if convCtx.Err() != nil {
			return nil, fmt.Errorf("%w: document conversion", ErrUpstreamTimeout)
		}
		return nil, fmt.Errorf("document conversion failed: %w", err)
	}

	s.cachePDF(ctx, hash, extension, int64(len(input)), pdf)
	return pdf, nil
}

// lookupCache returns a cached PDF and bumps its access stats.
func (s *DocConversionService) lookupCache(ctx context.Context, hash, extension string) ([]byte, bool) {
	row, err := s.client.DocConversionCache.Query().
		Where(
			docconversioncache.ContentHash(hash),
			docconversioncache.FileExtension(extension),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("Conversion cache lookup failed", "error", err)
		}
		return nil, false
	}

	if err := row.Update().
		SetLastAccessedAt(nowMs()).
		AddAccessCount(1).
		Exec(ctx); err != nil {
		slog.Debug("Failed to bump conversion cache stats", "error", err)
	}
	return row.PdfData, true
}

// cachePDF inserts a conversion result. Losing a concurrent insert race for
// the same (hash, extension) is fine — exactly one row survives and the
// loser's result was identical anyway.
func (s *DocConversionService) cachePDF(ctx context.Context, hash, extension string, originalSize int64, pdf []byte) bool {
	now := nowMs()
	err := s.client.DocConversionCache.Create().
		SetContentHash(hash).
		SetFileExtension(extension).
		SetOriginalSizeBytes(originalSize).
		SetPdfData(pdf).
		SetPdfSizeBytes(int64(len(pdf))).
		SetCreatedAt(now).
		SetLastAccessedAt(now).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false
		}
		slog.Warn("Failed to cache conversion result", "error", err)
		return false
	}
	return true
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// OfficeConverter shells out to a LibreOffice-compatible binary.
type OfficeConverter struct {
	// Binary is the converter executable, default "soffice".
	Binary string
}

// Convert writes input to a temp dir, runs the converter, and polls for the
// output PDF with bounded exponential backoff.
func (c *OfficeConverter) Convert(ctx context.Context, input []byte, extension string) ([]byte, error) {
	binary := c.Binary
	if binary == "" {
		binary = "soffice"
	}

	dir, err := os.MkdirTemp("", "docconv-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	inPath := filepath.Join(dir, "input."+extension)
	if err := os.WriteFile(inPath, input, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write input: %w", err)
	}

	// The subprocess deadline is capped by both the 60s hard limit and the
	// caller's wall clock.
	subCtx, cancel := context.WithTimeout(ctx, convSubprocessMax)
	defer cancel()

	cmd := exec.CommandContext(subCtx, binary,
		"--headless", "--convert-to", "pdf", "--outdir", dir, inPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("converter failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	outPath := filepath.Join(dir, "input.pdf")
	delay := convPollInitial
	for attempt := 0; attempt < convPollAttempts; attempt++ {
		if pdf, err := os.ReadFile(outPath); err == nil && len(pdf) > 0 {
			return pdf, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > convPollMax {
			delay = convPollMax
		}
	}
	return nil, fmt.Errorf("converter produced no output PDF")
}
