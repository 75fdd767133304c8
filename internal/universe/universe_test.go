package universe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/stockscope/pkg/config"
	"github.com/wonny/stockscope/pkg/httputil"
	"github.com/wonny/stockscope/pkg/logger"
)

func testHTTP() *httputil.Client {
	return httputil.New(&config.Config{Env: "development"}, logger.Nop()).DisableRetry()
}

func TestPopular(t *testing.T) {
	u := Popular()
	tickers, err := u.Tickers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "popular", u.Name())
	assert.Equal(t, "AAPL", tickers[0])
	assert.Equal(t, "ZM", tickers[len(tickers)-1])

	// DIS is listed twice in the source list
	count := 0
	for _, s := range tickers {
		if s == "DIS" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, tickers, len(popularTickers)-1)
}

func TestStatic_ReturnsCopy(t *testing.T) {
	u := NewStatic("mine", []string{" aapl", "MSFT", "", "msft", "brk-b"})

	first, err := u.Tickers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "BRK-B"}, first)

	first[0] = "XXX"
	second, _ := u.Tickers(context.Background())
	assert.Equal(t, "AAPL", second[0])
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "universe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile(t *testing.T) {
	path := writeFile(t, `
groups:
  - name: tech
    tickers: [AAPL, msft]
  - name: banks
    tickers: [JPM, AAPL]
`)
	u := NewFile(path)
	tickers, err := u.Tickers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT", "JPM"}, tickers)
	assert.Equal(t, "file:"+path, u.Name())
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown field", "groups:\n  - name: a\n    symbols: [AAPL]\n", "failed to parse"},
		{"no groups", "groups: []\n", "no groups"},
		{"unnamed group", "groups:\n  - tickers: [AAPL]\n", "has no name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestLoadFile_RepoUniverse(t *testing.T) {
	cfg, err := LoadFile("../../config/universe.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Groups)
}

const constituentsHTML = `<html><body>
<table class="wikitable sortable" id="constituents">
<tbody>
<tr><th>Symbol</th><th>Security</th><th>GICS Sector</th></tr>
<tr><td><a href="#">MMM</a></td><td>3M</td><td>Industrials</td></tr>
<tr><td><a href="#">BRK.B</a></td><td>Berkshire Hathaway</td><td>Financials</td></tr>
<tr><td>
AAPL
</td><td>Apple Inc.</td><td>Information Technology</td></tr>
</tbody>
</table>
<table class="wikitable" id="changes">
<tbody><tr><td>XYZ</td></tr></tbody>
</table>
</body></html>`

func TestSP500(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(constituentsHTML))
	}))
	defer server.Close()

	u := NewSP500(server.URL, testHTTP(), logger.Nop())
	tickers, err := u.Tickers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"MMM", "BRK-B", "AAPL"}, tickers)
	assert.Equal(t, "sp500", u.Name())
}

func TestSP500_Errors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := NewSP500(server.URL, testHTTP(), logger.Nop()).Tickers(context.Background())
		var statusErr *httputil.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	})

	t.Run("no table", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body><p>moved</p></body></html>"))
		}))
		defer server.Close()

		_, err := NewSP500(server.URL, testHTTP(), logger.Nop()).Tickers(context.Background())
		assert.ErrorContains(t, err, "no constituents")
	})
}

type failingUniverse struct{ err error }

func (f failingUniverse) Name() string { return "failing" }

func (f failingUniverse) Tickers(ctx context.Context) ([]string, error) {
	return nil, f.err
}

func TestFallback(t *testing.T) {
	secondary := NewStatic("backup", []string{"AAPL"})

	t.Run("primary ok", func(t *testing.T) {
		f := NewFallback(NewStatic("main", []string{"MSFT"}), secondary, logger.Nop())
		tickers, err := f.Tickers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"MSFT"}, tickers)
		assert.Equal(t, "main", f.Name())
	})

	t.Run("primary error", func(t *testing.T) {
		f := NewFallback(failingUniverse{err: errors.New("boom")}, secondary, logger.Nop())
		tickers, err := f.Tickers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL"}, tickers)
	})

	t.Run("primary empty", func(t *testing.T) {
		f := NewFallback(NewStatic("empty", nil), secondary, logger.Nop())
		tickers, err := f.Tickers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL"}, tickers)
	})
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{Picks: config.PicksConfig{Universe: "static"}}
	assert.Equal(t, "popular", FromConfig(cfg, testHTTP(), logger.Nop()).Name())

	cfg.Picks.Universe = "sp500"
	cfg.Picks.SP500URL = "http://example.invalid"
	assert.Equal(t, "sp500", FromConfig(cfg, testHTTP(), logger.Nop()).Name())

	cfg.Picks.Universe = "file"
	cfg.Picks.UniverseFile = "missing.yaml"
	u := FromConfig(cfg, testHTTP(), logger.Nop())
	tickers, err := u.Tickers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AAPL", tickers[0])
}
