package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"price_tag_app_go/services/layout"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// BackgroundState tracks the background fetch
type BackgroundState int

const (
	BackgroundPending  BackgroundState = iota // fetch running, raw reference in use
	BackgroundEmbedded                        // self-contained data URI in use
	BackgroundFallback                        // fetch failed, raw reference in use
)

func (s BackgroundState) String() string {
	switch s {
	case BackgroundEmbedded:
		return "embedded"
	case BackgroundFallback:
		return "fallback"
	default:
		return "pending"
	}
}

// The artwork is cover-fitted at twice the master frame so print output
// keeps detail.
const backgroundRenderScale = 2

// maxBackgroundBytes bounds downloads
const maxBackgroundBytes = 20 << 20

var ErrBackgroundFetch = errors.New("background fetch failed")

// BackgroundOptions configures a BackgroundLoader
type BackgroundOptions struct {
	Timeout time.Duration
	Embed   bool
	Assets  AssetStore
	Logger  *zap.Logger
	Client  *resty.Client // optional, mostly for tests
}

// BackgroundLoader resolves the shared tag background. Until the fetch
// completes, and forever if it fails, Ref returns the raw reference so
// rendering never waits on it.
type BackgroundLoader struct {
	source string
	embed  bool
	client *resty.Client
	assets AssetStore
	logger *zap.Logger

	mu       sync.RWMutex
	state    BackgroundState
	resolved string
	done     chan struct{}
	once     sync.Once
}

// NewBackgroundLoader prepares a loader for source (http(s) URL, data: URI
// or asset://key)
func NewBackgroundLoader(source string, opts BackgroundOptions) *BackgroundLoader {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	client := opts.Client
	if client == nil {
		client = resty.New().
			SetTimeout(opts.Timeout).
			SetRetryCount(2).
			SetRetryWaitTime(500 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second).
			SetHeader("Accept", "image/*")
	}

	b := &BackgroundLoader{
		source: source,
		embed:  opts.Embed,
		client: client,
		assets: opts.Assets,
		logger: opts.Logger,
		done:   make(chan struct{}),
	}

	// A data URI is already self-contained
	if strings.HasPrefix(source, "data:") {
		b.state = BackgroundEmbedded
		b.resolved = source
		b.finish()
	} else if !opts.Embed {
		b.state = BackgroundFallback
		b.finish()
	}
	return b
}

// Start fetches the background in the background
func (b *BackgroundLoader) Start(ctx context.Context) {
	if b.finished() {
		return
	}
	go func() {
		if _, err := b.Load(ctx); err != nil {
			b.logger.Warn("Background not embedded, using direct reference",
				zap.String("source", b.source), zap.Error(err))
		}
	}()
}

// Load fetches and embeds the background synchronously. On failure the
// loader settles on the fallback reference and the error is returned for
// logging only.
func (b *BackgroundLoader) Load(ctx context.Context) (string, error) {
	if b.finished() {
		return b.Ref(), nil
	}

	data, contentType, err := b.fetch(ctx)
	if err == nil {
		var uri string
		uri, err = embedBackground(data, contentType)
		if err == nil {
			b.settle(BackgroundEmbedded, uri)
			b.logger.Info("Background embedded",
				zap.String("source", b.source), zap.Int("bytes", len(data)), zap.String("content_type", contentType))
			return uri, nil
		}
	}

	b.settle(BackgroundFallback, "")
	return b.Ref(), err
}

// Ref returns the reference tiles should use right now
func (b *BackgroundLoader) Ref() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.state == BackgroundEmbedded {
		return b.resolved
	}
	return b.directRef()
}

// State reports the fetch progress
func (b *BackgroundLoader) State() BackgroundState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Wait blocks until the loader settles or ctx is done
func (b *BackgroundLoader) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Source is the configured reference
func (b *BackgroundLoader) Source() string {
	return b.source
}

func (b *BackgroundLoader) directRef() string {
	if key, ok := AssetKey(b.source); ok {
		if b.assets == nil {
			return ""
		}
		return b.assets.GetPublicURL(key)
	}
	return b.source
}

func (b *BackgroundLoader) fetch(ctx context.Context) ([]byte, string, error) {
	if key, ok := AssetKey(b.source); ok {
		if b.assets == nil || !b.assets.IsConfigured() {
			return nil, "", fmt.Errorf("%w: no asset store for %s", ErrBackgroundFetch, b.source)
		}
		rc, contentType, err := b.assets.Get(ctx, key)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrBackgroundFetch, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(io.LimitReader(rc, maxBackgroundBytes))
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrBackgroundFetch, err)
		}
		return data, contentType, nil
	}

	resp, err := b.client.R().SetContext(ctx).Get(b.source)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrBackgroundFetch, err)
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("%w: %s returned %d", ErrBackgroundFetch, b.source, resp.StatusCode())
	}
	data := resp.Body()
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty body from %s", ErrBackgroundFetch, b.source)
	}
	if len(data) > maxBackgroundBytes {
		return nil, "", fmt.Errorf("%w: %s is larger than %d bytes", ErrBackgroundFetch, b.source, maxBackgroundBytes)
	}
	return data, resp.Header().Get("Content-Type"), nil
}

func (b *BackgroundLoader) settle(state BackgroundState, resolved string) {
	b.mu.Lock()
	b.state = state
	b.resolved = resolved
	b.mu.Unlock()
	b.finish()
}

func (b *BackgroundLoader) finish() {
	b.once.Do(func() { close(b.done) })
}

func (b *BackgroundLoader) finished() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// embedBackground turns raw artwork into a data URI. Raster images are
// cover-fitted to the master frame's aspect ratio, the way the tag renders
// them; anything imaging cannot decode is inlined untouched.
func embedBackground(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: no image data", ErrBackgroundFetch)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
			contentType = http.DetectContentType(data)
		}
		if !strings.HasPrefix(contentType, "image/") {
			return "", fmt.Errorf("%w: %s is not an image", ErrBackgroundFetch, contentType)
		}
		return dataURI(contentType, data), nil
	}

	fitted := imaging.Fill(img,
		int(layout.MasterWidth*backgroundRenderScale), int(layout.MasterHeight*backgroundRenderScale),
		imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(88)); err != nil {
		return "", fmt.Errorf("failed to encode background: %w", err)
	}
	return dataURI("image/jpeg", buf.Bytes()), nil
}

func dataURI(contentType string, data []byte) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
