package extractor

import (
	"context"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"pinsaver-api/internal/config"

	"go.uber.org/zap"
)

// ErrNotFound is the routine outcome for pages without a downloadable video:
// dead links, private pins, markup changes, or a failed fetch.
var ErrNotFound = errors.New("no downloadable media found")

// DefaultTitle is used when the page carries no title field.
const DefaultTitle = "Pinterest Video"

// Result holds the fields extracted from a pin page.
type Result struct {
	MediaURL     string
	ThumbnailURL string
	Title        string
}

// Extractor fetches a pin page and derives media metadata from its markup.
type Extractor interface {
	Extract(ctx context.Context, pageURL string) (*Result, error)
}

// Pinterest embeds its pin data as escaped JSON fragments inside the HTML,
// so the fields are matched over the raw body rather than the DOM.
var (
	mediaPattern     = regexp.MustCompile(`"url":"(https://[^"]+\.mp4[^"]*)"`)
	thumbnailPattern = regexp.MustCompile(`"image_large_url":"([^"]+)"`)
	titlePattern     = regexp.MustCompile(`"title":"([^"]+)"`)
)

type pinExtractor struct {
	client    *http.Client
	userAgent string
	logger    *zap.Logger
}

// New creates an Extractor backed by a plain HTTP client with an explicit
// timeout.
func New(cfg config.ExtractorConfig, logger *zap.Logger) Extractor {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &pinExtractor{
		client:    &http.Client{Timeout: timeout},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Extract performs a single fetch attempt and parses the response body.
// Transport failures and non-2xx responses are folded into ErrNotFound;
// extraction failure is a normal outcome, not an error path for callers.
func (e *pinExtractor) Extract(ctx context.Context, pageURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		e.logger.Debug("Invalid pin URL", zap.String("url", pageURL), zap.Error(err))
		return nil, ErrNotFound
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Warn("Pin page fetch failed", zap.String("url", pageURL), zap.Error(err))
		return nil, ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e.logger.Warn("Pin page returned non-2xx status",
			zap.String("url", pageURL),
			zap.Int("status", resp.StatusCode))
		return nil, ErrNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		e.logger.Warn("Failed to read pin page body", zap.String("url", pageURL), zap.Error(err))
		return nil, ErrNotFound
	}

	result, ok := Parse(string(body))
	if !ok {
		e.logger.Info("No video URL in pin page", zap.String("url", pageURL))
		return nil, ErrNotFound
	}

	e.logger.Debug("Extracted pin media",
		zap.String("url", pageURL),
		zap.String("media_url", result.MediaURL),
		zap.String("title", result.Title))

	return result, nil
}

// Parse scans raw markup for the media, thumbnail and title fields. The media
// URL is mandatory; thumbnail falls back to "" and title to DefaultTitle.
func Parse(html string) (*Result, bool) {
	media := mediaPattern.FindStringSubmatch(html)
	if media == nil {
		return nil, false
	}

	result := &Result{
		MediaURL: unescape(media[1]),
		Title:    DefaultTitle,
	}

	if thumb := thumbnailPattern.FindStringSubmatch(html); thumb != nil {
		result.ThumbnailURL = unescape(thumb[1])
	}
	if title := titlePattern.FindStringSubmatch(html); title != nil {
		result.Title = title[1]
	}

	return result, true
}

// unescape converts the escaped JSON slashes embedded in the markup back to
// plain ones.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\/`, `/`)
}
