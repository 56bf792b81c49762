package export

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Print surface defaults
const (
	DefaultSettleDelay = 1500 * time.Millisecond
	DefaultTimeout     = 60 * time.Second
)

// PrintJob is a standalone document to print.
type PrintJob struct {
	// Title is the document title, used by the surface as the file name hint
	Title string
	// Document is a complete HTML document
	Document string
}

// PrintSurface turns a document into a PDF. Implementations must not crash
// the process when no print environment is available; they return a
// ContextError instead.
type PrintSurface interface {
	Print(ctx context.Context, job PrintJob) ([]byte, error)
}

// ChromeSurface prints with a headless Chrome instance started per job.
type ChromeSurface struct {
	// ExecPath overrides the browser binary. Empty uses chromedp's lookup.
	ExecPath string
	// SettleDelay is how long to wait after load for styles to apply
	SettleDelay time.Duration
	// Timeout bounds the whole print job
	Timeout time.Duration
}

// NewChromeSurface creates a surface with the default settle delay and timeout.
func NewChromeSurface(execPath string) *ChromeSurface {
	return &ChromeSurface{
		ExecPath:    execPath,
		SettleDelay: DefaultSettleDelay,
		Timeout:     DefaultTimeout,
	}
}

// Print loads the document in a hidden browser context and prints it to PDF.
func (s *ChromeSurface) Print(parent context.Context, job PrintJob) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if s.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(s.ExecPath))
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	tmpDir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return nil, &ContextError{Message: ContextErrorMessage, Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(job.Document), 0o600); err != nil {
		return nil, &ContextError{Message: ContextErrorMessage, Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(s.SettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if parent.Err() != nil {
			return nil, parent.Err()
		}
		log.Printf("[export] print job %q failed: %v", job.Title, err)
		return nil, &ContextError{Message: ContextErrorMessage, Cause: err}
	}
	return pdf, nil
}
