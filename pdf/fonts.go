package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-pdf/fpdf"
)

// FontStrategy selects how the body font is provided, decided once per
// render rather than per page.
type FontStrategy int

const (
	// FontCoreOnly uses the built-in Helvetica core font. Non-Latin glyphs
	// will not render; this is the accepted degradation, not an error.
	FontCoreOnly FontStrategy = iota
	// FontEmbedded registers caller-supplied TTF bytes.
	FontEmbedded
	// FontRemote fetches a TTF over HTTP(S) and degrades to the core font
	// on any failure.
	FontRemote
)

// FontSource describes where the body font comes from.
type FontSource struct {
	Strategy FontStrategy
	TTF      []byte
	URL      string
	Client   *http.Client
}

const (
	coreFontFamily   = "Helvetica"
	customFontFamily = "ProposalBody"
)

// installFont registers the configured font with the document and returns
// the family to use. Failures are soft: the core font is returned together
// with a warning, never an error.
func installFont(ctx context.Context, doc *fpdf.Fpdf, src FontSource) (string, []string) {
	switch src.Strategy {
	case FontEmbedded:
		if len(src.TTF) == 0 {
			return coreFontFamily, []string{"font: no TTF bytes supplied, using core font"}
		}
		return registerTTF(doc, src.TTF)
	case FontRemote:
		if src.URL == "" {
			return coreFontFamily, []string{"font: no URL supplied, using core font"}
		}
		ttf, err := fetchFont(ctx, src.URL, src.Client)
		if err != nil {
			return coreFontFamily, []string{fmt.Sprintf("font: %v, using core font", err)}
		}
		return registerTTF(doc, ttf)
	default:
		return coreFontFamily, nil
	}
}

// registerTTF installs the same TTF for the regular and bold styles; a
// single face keeps bold runs renderable without a second file.
func registerTTF(doc *fpdf.Fpdf, ttf []byte) (string, []string) {
	doc.AddUTF8FontFromBytes(customFontFamily, "", ttf)
	doc.AddUTF8FontFromBytes(customFontFamily, "B", ttf)
	if err := doc.Error(); err != nil {
		doc.ClearError()
		return coreFontFamily, []string{fmt.Sprintf("font: register failed: %v, using core font", err)}
	}
	return customFontFamily, nil
}

func fetchFont(ctx context.Context, rawURL string, client *http.Client) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch %s: unsupported scheme %q", rawURL, req.URL.Scheme)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: status %s", rawURL, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}
	return data, nil
}
