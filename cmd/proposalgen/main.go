package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/proposalgen"
	"pkt.systems/proposalgen/pdf"
)

const defaultWidth = 80

// inputDocument is the JSON shape the CLI consumes: the proposal document
// fields at the top level plus an optional chapters object.
type inputDocument struct {
	Chapters *proposalgen.Chapters `json:"chapters"`
	proposalgen.ProposalDocument
}

func main() {
	var (
		outDir         string
		pdfMode        bool
		writeImages    bool
		check          bool
		preview        bool
		widthFlag      int
		designGuide    string
		designGuideOut bool
		fontURL        string
		fontFile       string
		pdfPageSize    string
		pdfMargin      float64
	)

	pdfDefaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("proposalgen", pflag.ExitOnError)
	flags.StringVarP(&outDir, "output-dir", "o", ".", "Output directory")
	flags.BoolVar(&pdfMode, "pdf", false, "Also generate the NotebookLM PDF")
	flags.BoolVar(&writeImages, "images", false, "Also write the collected image files")
	flags.BoolVar(&check, "check", false, "Print validation warnings (never blocks output)")
	flags.BoolVar(&preview, "preview", false, "Render the Markdown to the terminal instead of writing files")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Preview width override (0 uses terminal width if available)")
	flags.StringVar(&designGuide, "design-guide", "", "External design guide Markdown (bundled guide if empty)")
	flags.BoolVar(&designGuideOut, "design-guide-out", false, "Also write the design guide as design_guide.md")
	flags.StringVar(&fontURL, "font-url", "", "TTF URL for Japanese glyphs in the PDF (soft failure)")
	flags.StringVar(&fontFile, "font-file", "", "TTF path for Japanese glyphs in the PDF")
	flags.StringVar(&pdfPageSize, "pdf-page-size", pdfDefaults.PageSize, "PDF page size")
	flags.Float64Var(&pdfMargin, "pdf-margin", pdfDefaults.Margin, "Page margin in millimeters")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: proposalgen [flags] [proposal.json]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, the proposal JSON is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	doc, chapters, err := readInput(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	if check {
		printWarnings(proposalgen.ValidateAll(doc, chapters))
	}

	markdown := proposalgen.GenerateMarkdown(doc, chapters)
	images := proposalgen.CollectImages(doc, chapters)

	if preview {
		if err := proposalgen.Preview(proposalgen.PreviewRequest{
			Markdown: markdown,
			Writer:   os.Stdout,
			Width:    resolveWidth(widthFlag),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "preview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "output dir: %v\n", err)
		os.Exit(1)
	}

	mdPath := filepath.Join(outDir, proposalgen.MarkdownFileName(doc.Cover.AccountName))
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write markdown: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", mdPath)

	guide, guideWarnings := proposalgen.LoadDesignGuide(designGuide)
	for _, w := range guideWarnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if designGuideOut {
		guidePath := filepath.Join(outDir, "design_guide.md")
		if err := os.WriteFile(guidePath, []byte(guide), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write design guide: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", guidePath)
	}

	if writeImages {
		for _, img := range images {
			if err := writeImage(outDir, img); err != nil {
				fmt.Fprintf(os.Stderr, "warning: image %s: %v\n", img.FileName, err)
				continue
			}
			fmt.Fprintf(os.Stderr, "wrote %s\n", filepath.Join(outDir, img.FileName))
		}
	}

	if pdfMode {
		font, err := resolveFont(fontFile, fontURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "font: %v\n", err)
			os.Exit(1)
		}
		cfg := pdf.DefaultConfig()
		cfg.PageSize = pdfPageSize
		if pdfMargin > 0 {
			cfg.Margin = pdfMargin
		}
		cfg.Font = font

		pdfPath := filepath.Join(outDir, proposalgen.PDFFileName(doc.Cover.AccountName))
		f, err := os.Create(pdfPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create pdf: %v\n", err)
			os.Exit(1)
		}
		result, err := pdf.Render(context.Background(), pdf.RenderRequest{
			Markdown:    markdown,
			DesignGuide: guide,
			Images:      images,
			Writer:      f,
			Config:      cfg,
		})
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			// No partial file on a failed render attempt.
			_ = os.Remove(pdfPath)
			fmt.Fprintf(os.Stderr, "render pdf: %v\n", err)
			os.Exit(1)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d pages)\n", pdfPath, result.Pages)
	}
}

func readInput(args []string) (proposalgen.ProposalDocument, proposalgen.Chapters, error) {
	var reader io.Reader = os.Stdin
	if len(args) > 1 {
		return proposalgen.ProposalDocument{}, proposalgen.Chapters{}, fmt.Errorf("expected at most one input file")
	}
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return proposalgen.ProposalDocument{}, proposalgen.Chapters{}, err
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	var in inputDocument
	dec := json.NewDecoder(reader)
	if err := dec.Decode(&in); err != nil {
		return proposalgen.ProposalDocument{}, proposalgen.Chapters{}, fmt.Errorf("decode JSON: %w", err)
	}
	chapters := proposalgen.DefaultChapters()
	if in.Chapters != nil {
		chapters = *in.Chapters
	}
	// Cover and contact are permanent regardless of the input toggles.
	chapters.Cover = true
	chapters.Contact = true
	return in.ProposalDocument, chapters, nil
}

func resolveFont(fontFile, fontURL string) (pdf.FontSource, error) {
	if fontFile != "" {
		if !strings.HasSuffix(strings.ToLower(fontFile), ".ttf") {
			return pdf.FontSource{}, fmt.Errorf("expected .ttf font file")
		}
		ttf, err := os.ReadFile(fontFile)
		if err != nil {
			return pdf.FontSource{}, err
		}
		return pdf.FontSource{Strategy: pdf.FontEmbedded, TTF: ttf}, nil
	}
	if fontURL != "" {
		return pdf.FontSource{Strategy: pdf.FontRemote, URL: fontURL}, nil
	}
	return pdf.FontSource{Strategy: pdf.FontCoreOnly}, nil
}

func writeImage(outDir string, img proposalgen.ImageDescriptor) error {
	idx := strings.Index(img.DataURL, ";base64,")
	if idx < 0 {
		return fmt.Errorf("not a base64 data URL")
	}
	data, err := base64.StdEncoding.DecodeString(img.DataURL[idx+len(";base64,"):])
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, img.FileName), data, 0o644)
}

func printWarnings(errs proposalgen.DocumentErrors) {
	if errs.Empty() {
		fmt.Fprintln(os.Stderr, "validation: ok")
		return
	}
	printFieldWarnings("cover", errs.Cover)
	printFieldWarnings("performance", errs.Performance)
	printFieldWarnings("follower", errs.Follower)
	printIndexedWarnings("caseStudies", errs.CaseStudies)
	printIndexedWarnings("pricingPlans", errs.PricingPlans)
	printFieldWarnings("contact", errs.Contact)
}

func printFieldWarnings(section string, fields proposalgen.FieldErrors) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "warning: %s.%s: %s\n", section, name, fields[name])
	}
}

func printIndexedWarnings(section string, indexed map[int]proposalgen.FieldErrors) {
	indexes := make([]int, 0, len(indexed))
	for i := range indexed {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	for _, i := range indexes {
		printFieldWarnings(fmt.Sprintf("%s[%d]", section, i), indexed[i])
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}
