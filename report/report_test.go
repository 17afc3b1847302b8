package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/inventory"
	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/mdp"
)

func testRun(t *testing.T) Run {
	t.Helper()
	p := inventory.DefaultParams()
	p.Capacity = 3
	p.Episodes = 5
	p.MaxActionsPerEpisode = 20

	m, err := inventory.New(p, inventory.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, m.Train(context.Background()))
	learned, err := m.OptimalPolicy()
	require.NoError(t, err)

	simple := inventory.OrderUpTo{Capacity: 3, TargetLevel: 1}
	return Run{
		RunID:      m.RunID().String(),
		Params:     p,
		Space:      m.StateSpace(),
		Learned:    learned,
		Simple:     simple,
		Comparison: inventory.Compare(m, learned, simple, 50),
	}
}

func TestWriteCSV(t *testing.T) {
	space, err := mdp.Enumerate(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	learned := mdp.PolicyTable{{OnHand: 0, InTransit: 0}: 1}
	require.NoError(t, WriteCSV(&buf, space, learned, inventory.MaxOrder{Capacity: 2}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+space.Len())
	assert.Equal(t, []string{"State", "Q_Learning_Policy", "Simple_Policy"}, rows[0])
	assert.Equal(t, []string{"(0, 0)", "1", "2"}, rows[1])
	assert.Equal(t, []string{"(0, 1)", "0", "1"}, rows[2])
	assert.Equal(t, []string{"(2, 0)", "0", "0"}, rows[len(rows)-1])
}

func TestRenderPage(t *testing.T) {
	r := testRun(t)

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, r))

	html := buf.String()
	assert.Contains(t, html, "Optimal order quantity by state")
	assert.Contains(t, html, "Q-learning vs order-up-to-1")
	assert.Contains(t, html, "Cumulative cost over evaluation")
	assert.Contains(t, html, r.RunID)
	assert.Contains(t, html, "(3, 0)")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	paths, err := WriteFiles(dir, testRun(t))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, PageFile), filepath.Join(dir, CSVFile)}, paths)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestServer_Routes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PageFile), []byte("<html>report</html>"), 0o644))

	h := NewServer(dir, zerolog.New(io.Discard)).Routes()

	res := httptest.NewRecorder()
	h.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, res.Code)
	assert.Equal(t, "/"+PageFile, res.Header().Get("Location"))

	res = httptest.NewRecorder()
	h.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/"+PageFile, nil))
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "report")

	res = httptest.NewRecorder()
	h.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/missing.csv", nil))
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = httptest.NewRecorder()
	h.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestServer_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- NewServer(t.TempDir(), zerolog.New(io.Discard)).Serve(ctx, ln)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
