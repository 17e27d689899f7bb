package fred

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	body  string
	err   error
	calls int
	path  string
	query *Query
}

func (f *fakeTransport) Get(_ context.Context, path string, q *Query) ([]byte, error) {
	f.calls++
	f.path = path
	f.query = q
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

func newFakeClient(t *testing.T, body string) (*Client, *fakeTransport) {
	t.Helper()
	ft := &fakeTransport{body: body}
	c, err := New("test-key", WithTransport(ft))
	require.NoError(t, err)
	return c, ft
}

func TestNew(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		c, err := New("")
		require.ErrorIs(t, err, ErrAPIKeyRequired)
		assert.Nil(t, c)
	})

	t.Run("defaults", func(t *testing.T) {
		c, err := New("test-key")
		require.NoError(t, err)
		require.NotNil(t, c.owned)
		assert.Equal(t, "https://api.stlouisfed.org/fred", c.owned.baseURL)
		assert.Equal(t, defaultTimeout, c.owned.httpClient.Timeout)
		assert.True(t, c.owned.owned)
	})

	t.Run("options", func(t *testing.T) {
		custom := &http.Client{Timeout: 5 * time.Second}
		c, err := New("test-key",
			WithBaseURL("http://localhost:8080/fred/"),
			WithHTTPClient(custom),
			WithUserAgent("tests"),
		)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/fred", c.owned.baseURL)
		assert.Same(t, custom, c.owned.httpClient)
		assert.False(t, c.owned.owned)
		assert.Equal(t, "tests", c.owned.userAgent)
	})

	t.Run("timeout", func(t *testing.T) {
		c, err := New("test-key", WithTimeout(3*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, c.owned.httpClient.Timeout)
	})
}

func TestGetCategoryEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/fred/category", r.URL.Path)
		assert.Equal(t, "125", r.URL.Query().Get("category_id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "xml", r.URL.Query().Get("file_type"))
		assert.Equal(t, "application/xml", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "text/xml; charset=UTF-8")
		w.Write([]byte(`<?xml version="1.0" encoding="utf-8" ?>
<categories>
  <category id="125" name="Trade Balance" parent_id="13"/>
</categories>`))
	}))
	defer server.Close()

	c, err := New("test-key", WithBaseURL(server.URL+"/fred/"))
	require.NoError(t, err)
	defer c.Close()

	cat, err := c.GetCategory(context.Background(), 125)
	require.NoError(t, err)
	assert.Equal(t, Category{ID: 125, ParentID: 13, Name: "Trade Balance"}, cat)
}

func TestGetCategoryFakeTransport(t *testing.T) {
	c, ft := newFakeClient(t, `<category id="125" parent_id="13" name="Trade Balance"/>`)

	cat, err := c.GetCategory(context.Background(), 125)
	require.NoError(t, err)
	assert.Equal(t, Category{ID: 125, ParentID: 13, Name: "Trade Balance"}, cat)
	assert.Equal(t, "category", ft.path)
	assert.Equal(t, "category_id=125", ft.query.Encode())
	_, hasKey := ft.query.Get("api_key")
	assert.False(t, hasKey, "the builder never adds the API key")
}

func TestAPIErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`<?xml version="1.0" encoding="utf-8" ?>
<error code="400" message="Bad Request. The series does not exist."/>`))
	}))
	defer server.Close()

	c, err := New("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetSeries(context.Background(), SeriesParams{SeriesID: "NOPE"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "series:")

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.True(t, terr.IsBadRequest())
	assert.False(t, terr.IsNotFound())
	assert.Equal(t, 400, terr.Code)
	assert.Equal(t, "Bad Request. The series does not exist.", terr.Message)
}

func TestTransportFailures(t *testing.T) {
	t.Run("status without body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		c, err := New("test-key", WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = c.GetSources(context.Background(), SourcesParams{})
		var terr *TransportError
		require.ErrorAs(t, err, &terr)
		assert.True(t, terr.IsNotFound())
		assert.Empty(t, terr.Message)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<categories/>`))
		}))
		defer server.Close()

		c, err := New("test-key", WithBaseURL(server.URL))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = c.GetCategoryChildren(ctx, CategoryParams{ID: 0})
		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("transport error passes through", func(t *testing.T) {
		boom := errors.New("boom")
		ft := &fakeTransport{err: &TransportError{Path: "tags", Err: boom}}
		c, err := New("test-key", WithTransport(ft))
		require.NoError(t, err)

		_, err = c.GetTags(context.Background(), TagsParams{})
		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, boom)
	})
}

func TestInvalidParametersSkipTransport(t *testing.T) {
	c, ft := newFakeClient(t, `<seriess/>`)

	_, err := c.GetCategorySeries(context.Background(), CategorySeriesParams{
		CategoryID:       125,
		SeriesListParams: SeriesListParams{ExcludeTagNames: []string{"x"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, 0, ft.calls)
}

func TestGetReleaseTables(t *testing.T) {
	c, ft := newFakeClient(t, `<release_tables name="Personal Income and Outlays" element_id="" release_id="53">
  <element element_id="12886" release_id="53" series_id="" parent_id="" line="" type="section" name="Personal consumption" level="0">
    <children>
      <element element_id="12887" release_id="53" series_id="DGDSRL1A225NBEA" parent_id="12886" line="" type="series" name="Goods" level="1"/>
    </children>
  </element>
  <name>Personal Income and Outlays</name>
</release_tables>`)

	elems, err := c.GetReleaseTables(context.Background(), ReleaseTablesParams{ReleaseID: 53})
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.Len(t, elems[0].Children, 1)
	assert.Equal(t, "DGDSRL1A225NBEA", *elems[0].Children[0].SeriesID)
	assert.Equal(t, "release/tables", ft.path)
}

func TestListEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("observations", func(t *testing.T) {
		c, ft := newFakeClient(t, `<observations>
  <observation realtime_start="2024-01-01" realtime_end="2024-01-01" date="2020-01-01" value="1.5"/>
  <observation realtime_start="2024-01-01" realtime_end="2024-01-01" date="2021-01-01" value="."/>
</observations>`)

		obs, err := c.GetSeriesObservations(ctx, ObservationsParams{SeriesID: "GNPCA"})
		require.NoError(t, err)
		require.Len(t, obs, 2)
		assert.Equal(t, 1.5, obs[0].Value)
		assert.True(t, obs[1].Missing)
		assert.Equal(t, "series/observations", ft.path)
	})

	t.Run("sources", func(t *testing.T) {
		c, _ := newFakeClient(t, `<sources>
  <source id="1" realtime_start="2024-01-01" realtime_end="2024-01-01" name="Board of Governors of the Federal Reserve System (US)" link="http://www.federalreserve.gov/"/>
  <source id="3" realtime_start="2024-01-01" realtime_end="2024-01-01" name="Federal Reserve Bank of Philadelphia"/>
</sources>`)

		sources, err := c.GetSources(ctx, SourcesParams{})
		require.NoError(t, err)
		require.Len(t, sources, 2)
		assert.Equal(t, 3, sources[1].ID)
		assert.Equal(t, "http://www.federalreserve.gov/", sources[0].Link)
	})

	t.Run("series release", func(t *testing.T) {
		c, ft := newFakeClient(t, `<releases>
  <release id="53" realtime_start="2024-01-01" realtime_end="2024-01-01" name="Gross Domestic Product" press_release="true" link="http://www.bea.gov/national/index.htm"/>
</releases>`)

		rel, err := c.GetSeriesRelease(ctx, SeriesParams{SeriesID: "GNPCA"})
		require.NoError(t, err)
		assert.Equal(t, 53, rel.ID)
		assert.True(t, rel.PressRelease)
		assert.Equal(t, "series/release", ft.path)
	})

	t.Run("malformed list fails whole call", func(t *testing.T) {
		c, _ := newFakeClient(t, `<categories>
  <category id="1" parent_id="0" name="ok"/>
  <category parent_id="0" name="missing id"/>
</categories>`)

		cats, err := c.GetCategoryChildren(ctx, CategoryParams{ID: 0})
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Nil(t, cats)
	})
}

func TestClose(t *testing.T) {
	c, ft := newFakeClient(t, `<category id="1" parent_id="0" name="x"/>`)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.GetCategory(context.Background(), 1)
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.Equal(t, 0, ft.calls)

	owned, err := New("test-key")
	require.NoError(t, err)
	assert.NoError(t, owned.Close())
}
