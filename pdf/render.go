package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"pkt.systems/proposalgen"
)

// RenderRequest contains the inputs for one PDF render.
type RenderRequest struct {
	Markdown    string
	DesignGuide string
	Images      []proposalgen.ImageDescriptor
	Writer      io.Writer
	Config      Config
}

// RenderResult reports what a render produced.
type RenderResult struct {
	Pages    int
	Warnings []string
}

// Render assembles the proposal document: the proposal Markdown, a forced
// new page with the image gallery, and a forced new page with the design
// guide. Individual image and font failures degrade to warnings; only a
// failure that prevents producing a coherent document returns an error, and
// no partial output is written in that case.
func Render(ctx context.Context, req RenderRequest) (RenderResult, error) {
	if req.Writer == nil {
		return RenderResult{}, fmt.Errorf("pdf render: writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)

	doc := fpdf.New("P", "mm", cfg.PageSize, "")
	doc.SetCatalogSort(true)
	doc.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	doc.SetAutoPageBreak(false, cfg.Margin)
	if !cfg.CreationDate.IsZero() {
		doc.SetCreationDate(cfg.CreationDate)
		doc.SetModificationDate(cfg.CreationDate)
	}

	family, warnings := installFont(ctx, doc, cfg.Font)
	doc.SetFont(family, "", cfg.BodyFontSize)
	if err := doc.Error(); err != nil {
		return RenderResult{}, fmt.Errorf("pdf render: font setup failed: %w", err)
	}

	l := newLayout(doc, cfg, family)
	l.warnings = warnings

	doc.AddPage()
	l.renderMarkdown(req.Markdown)

	l.newPage()
	l.drawImages(req.Images)

	l.newPage()
	l.renderMarkdown(req.DesignGuide)

	if err := doc.Error(); err != nil {
		return RenderResult{}, fmt.Errorf("pdf render: %w", err)
	}
	if err := doc.Output(req.Writer); err != nil {
		return RenderResult{}, fmt.Errorf("pdf render: output: %w", err)
	}
	return RenderResult{Pages: doc.PageCount(), Warnings: l.warnings}, nil
}
