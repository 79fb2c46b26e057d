// Package fetch retrieves document content from the sources the CLI
// accepts: local files, HTTP(S) URLs, and standard input.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Size limits to keep a single document from exhausting memory. Documents
// here are prose, not datasets; anything near these limits is suspect.
const (
	MaxFileBytes = 32 * 1024 * 1024 // local files and stdin
	MaxHTTPBytes = 64 * 1024 * 1024 // HTTP content (Content-Length may be absent)
)

// requestTimeout bounds the whole HTTP exchange.
const requestTimeout = 30 * time.Second

// Kind classifies a source string.
type Kind int

const (
	// File is a local filesystem path (the default).
	File Kind = iota
	// URL is an http:// or https:// address.
	URL
	// Stdin is the "-" source.
	Stdin
)

// Classify determines how a source string will be fetched.
func Classify(source string) Kind {
	switch {
	case source == "-":
		return Stdin
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return URL
	default:
		return File
	}
}

// httpClient is shared across fetches; safe for concurrent use.
var httpClient = &http.Client{
	Timeout: requestTimeout,
	Transport: &http.Transport{
		Dial: (&net.Dialer{
			Timeout: requestTimeout / 6,
		}).Dial,
		TLSHandshakeTimeout:   requestTimeout / 6,
		ResponseHeaderTimeout: requestTimeout / 2,
		DisableKeepAlives:     true,
	},
}

// cappedReader wraps an io.ReadCloser and fails once the byte budget is
// exhausted, instead of silently truncating.
type cappedReader struct {
	io.ReadCloser
	remaining int64
	source    string
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", c.source)
	}
	if int64(len(p)) > c.remaining {
		p = p[:c.remaining]
	}
	n, err := c.ReadCloser.Read(p)
	c.remaining -= int64(n)
	return n, err
}

// Open returns a reader for the given source. ctx bounds URL fetches; local
// reads ignore it.
func Open(ctx context.Context, source string) (io.ReadCloser, error) {
	switch Classify(source) {
	case Stdin:
		return &cappedReader{ReadCloser: os.Stdin, remaining: MaxFileBytes, source: "stdin"}, nil
	case URL:
		return openURL(ctx, source)
	default:
		return openFile(source)
	}
}

func openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "mdtally/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request for %q failed: %s", url, resp.Status)
	}

	// reject oversized responses up front when the server declares a length
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		if size, err := strconv.ParseInt(cl, 10, 64); err == nil && size > MaxHTTPBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("content from %q too large (%d bytes > %d byte limit)", url, size, MaxHTTPBytes)
		}
	}

	return &cappedReader{ReadCloser: resp.Body, remaining: MaxHTTPBytes, source: url}, nil
}

func openFile(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if info.Size() > MaxFileBytes {
		return nil, fmt.Errorf("file %q too large (%d bytes > %d byte limit)", path, info.Size(), MaxFileBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	return file, nil
}
