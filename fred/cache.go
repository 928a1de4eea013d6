package fred

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// diskCache is an http.RoundTripper that keeps successful responses on disk
// for the rest of the day.
type diskCache struct {
	base http.RoundTripper
	dir  string
	now  func() time.Time
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	// the key changes every day, so yesterday's entries are never read again.
	key := fmt.Sprintf("%s %s %s", c.now().Format(time.DateOnly), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	if resp, err := c.get(key, req); err == nil {
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("fred request",
		zap.String("path", req.URL.Path),
		zap.String("series", req.URL.Query().Get("series_id")),
		zap.String("status", resp.Status),
	)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		zap.L().Warn("cache write failed (ignored)", zap.Error(err))
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores resp, leaving its body readable for the caller.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}
