package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// getChromePath returns the Chrome executable path from environment variable
func getChromePath() string {
	return os.Getenv("CHROME_PATH")
}

// SnapshotOptions controls the social preview capture
type SnapshotOptions struct {
	Width   int64
	Height  int64
	Quality int           // PNG when 0, JPEG quality (1-100) otherwise
	Settle  time.Duration // wait after load so the hero video and fonts paint
	Timeout time.Duration
}

// DefaultSnapshotOptions returns the Open Graph image size (1200x630)
func DefaultSnapshotOptions() SnapshotOptions {
	return SnapshotOptions{
		Width:   1200,
		Height:  630,
		Settle:  1500 * time.Millisecond,
		Timeout: 45 * time.Second,
	}
}

// Extension is the file extension of the image CaptureSnapshot produces
func (o SnapshotOptions) Extension() string {
	if o.Quality > 0 {
		return "jpg"
	}
	return "png"
}

func screenshot(options SnapshotOptions, buf *[]byte) chromedp.Action {
	if options.Quality <= 0 {
		return chromedp.CaptureScreenshot(buf)
	}
	quality := int64(options.Quality)
	if quality > 100 {
		quality = 100
	}
	return chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		*buf, err = page.CaptureScreenshot().
			WithFormat(page.CaptureScreenshotFormatJpeg).
			WithQuality(quality).
			Do(ctx)
		return err
	})
}

// CaptureSnapshot loads pageURL in headless Chrome and screenshots the viewport
func CaptureSnapshot(ctx context.Context, pageURL string, options SnapshotOptions) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(int(options.Width), int(options.Height)),
	)

	// Check for custom Chrome path (for headless-shell in Docker)
	if chromePath := getChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var buf []byte
	err := chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(options.Width, options.Height, 1, false),
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible("#hero", chromedp.ByID),
		chromedp.Sleep(options.Settle),
		screenshot(options, &buf),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture snapshot of %s: %w", pageURL, err)
	}

	return buf, nil
}
