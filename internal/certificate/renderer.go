package certificate

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Renderer turns a composed document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, doc Document, layout Layout) ([]byte, error)
	Close() error
}

const (
	RendererChrome = "chrome"
	RendererGoFPDF = "gofpdf"
)

// RendererConfig selects and configures a renderer.
type RendererConfig struct {
	Kind      string
	ChromeBin string
	Sandbox   bool
}

// NewRenderer builds the configured renderer.
func NewRenderer(cfg RendererConfig, logger *zap.Logger) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "", RendererChrome:
		return NewChromeRenderer(cfg.ChromeBin, cfg.Sandbox, logger), nil
	case RendererGoFPDF:
		return NewGoFPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown certificate renderer %q", cfg.Kind)
	}
}
