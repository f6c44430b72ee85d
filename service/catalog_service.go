package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/templates"
)

const catalogTemplate = "catalog.html"

// Export formats supported by Export
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// exportTimeout bounds a whole headless-browser session
const exportTimeout = 30 * time.Second

// CatalogService renders the catalog page and exports it through headless Chrome
type CatalogService struct {
	tmpl       *template.Template
	baseURL    string // where Chrome can reach this service, e.g. "http://127.0.0.1:8080"
	chromePath string
}

// NewCatalogService parses the embedded catalog template
func NewCatalogService(baseURL, chromePath string) (*CatalogService, error) {
	tmpl, err := template.ParseFS(templates.FS, catalogTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &CatalogService{
		tmpl:       tmpl,
		baseURL:    baseURL,
		chromePath: chromePath,
	}, nil
}

// RenderCatalogHTML writes the catalog page for view to w
func (s *CatalogService) RenderCatalogHTML(w io.Writer, view PageView) error {
	// Render into a buffer so a template error never leaves a half-written page
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, catalogTemplate, view); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// IsValidFormat reports whether format can be exported
func IsValidFormat(format string) bool {
	return format == FormatPDF || format == FormatPNG
}

// detectChromePath returns the configured Chrome executable or the first common install found
func (s *CatalogService) detectChromePath() string {
	if s.chromePath != "" {
		if _, err := os.Stat(s.chromePath); err == nil {
			return s.chromePath
		}
		logging.L().Warnf("⚠️  CHROME_PATH %s not found, searching common paths", s.chromePath)
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Export renders pagePath of this service in headless Chrome and returns a PDF or a full-page PNG
func (s *CatalogService) Export(ctx context.Context, format, pagePath string) ([]byte, error) {
	if !IsValidFormat(format) {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}

	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := s.detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.baseURL + pagePath
	logging.L().Infof("📸 Exporting %s as %s", renderURL, format)

	var out []byte
	actions := []chromedp.Action{
		chromedp.EmulateViewport(1200, 900),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for thumbnails; broken placeholder images must not block the export
		chromedp.Evaluate(`
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
				if (img.complete) return Promise.resolve();
				return new Promise(resolve => {
					const timeout = setTimeout(resolve, 5000);
					img.onload = img.onerror = () => { clearTimeout(timeout); resolve(); };
				});
			}));
		`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	}

	switch format {
	case FormatPDF:
		actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			out, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27). // A4, 210mm
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				Do(ctx)
			return err
		}))
	case FormatPNG:
		// quality 100 makes chromedp capture PNG instead of JPEG
		actions = append(actions, chromedp.FullScreenshot(&out, 100))
	}

	if err := chromedp.Run(chromedpCtx, actions...); err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", format, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("failed to generate %s: empty output", format)
	}

	logging.L().Infof("✓ Exported catalog as %s (%d bytes)", format, len(out))
	return out, nil
}
