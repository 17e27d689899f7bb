package fred

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Transport performs one GET against the API and returns the raw body.
// Implementations add authentication; the query passed in never carries
// the API key.
type Transport interface {
	Get(ctx context.Context, path string, q *Query) ([]byte, error)
}

// httpTransport is the default Transport backed by net/http.
type httpTransport struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	owned      bool
	logger     zerolog.Logger
}

// apiError is the body the API sends with non-2xx statuses.
type apiError struct {
	XMLName xml.Name `xml:"error"`
	Code    int      `xml:"code,attr"`
	Message string   `xml:"message,attr"`
}

func (t *httpTransport) Get(ctx context.Context, path string, q *Query) ([]byte, error) {
	params := NewQuery()
	if q != nil {
		for _, k := range q.Keys() {
			v, _ := q.Get(k)
			params.Set(k, v)
		}
	}
	params.Set("api_key", t.apiKey)
	params.Set("file_type", "xml")

	endpoint := t.baseURL + "/" + strings.TrimPrefix(path, "/") + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Path: path, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/xml")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	t.logger.Debug().
		Str("path", path).
		Int("params", q.Len()).
		Msg("Making FRED API request")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		terr := &TransportError{Path: path, StatusCode: resp.StatusCode}
		var apiErr apiError
		if xml.Unmarshal(body, &apiErr) == nil {
			terr.Code = apiErr.Code
			terr.Message = apiErr.Message
		}
		return nil, terr
	}

	t.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("FRED API response received")

	return body, nil
}

// close releases idle connections when the http.Client was created by the
// transport itself.
func (t *httpTransport) close() {
	if t.owned {
		t.httpClient.CloseIdleConnections()
	}
}
