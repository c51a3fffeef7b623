package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/datasets/domain"
	"stock_dashboard/internal/platform/externalapi/staticdata"
)

// mockFetcher はFetcherインターフェースのモック実装です。
type mockFetcher struct {
	fetchFn func(ctx context.Context, path string) (string, error)
	paths   []string
}

func (m *mockFetcher) Fetch(ctx context.Context, path string) (string, error) {
	m.paths = append(m.paths, path)
	if m.fetchFn != nil {
		return m.fetchFn(ctx, path)
	}
	return "", errors.New("fetchFn is not implemented")
}

func TestPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/data/historical/AAPL.csv", HistoricalPath("aapl"))
	assert.Equal(t, "/data/predictions/MSFT.csv", PredictionPath("MSFT"))
}

func TestSource_Historical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		fetchErr    error
		expectedErr error
		expectedLen int
	}{
		{
			name: "success: rows are normalized and sorted",
			body: "date,open,high,low,close,volume\n" +
				"2025-01-02,100,105,99,104,1000\n" +
				"2025-01-01,98,101,97,100,900\n",
			expectedLen: 2,
		},
		{
			name:        "error: wrong shape",
			body:        "date,predicted,lowerBound,upperBound\n2025-01-01,1,0,2\n",
			expectedErr: domain.ErrShapeMismatch,
		},
		{
			name:        "error: header only",
			body:        "date,open,high,low,close,volume\n",
			expectedErr: domain.ErrNoDataset,
		},
		{
			name:        "error: not found maps to no dataset",
			fetchErr:    &staticdata.FetchError{Path: "/data/historical/AAPL.csv", StatusCode: http.StatusNotFound},
			expectedErr: domain.ErrNoDataset,
		},
		{
			name:        "error: server error stays a fetch error",
			fetchErr:    &staticdata.FetchError{Path: "/data/historical/AAPL.csv", StatusCode: http.StatusBadGateway},
			expectedErr: domain.ErrFetch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := &mockFetcher{fetchFn: func(ctx context.Context, path string) (string, error) {
				return tt.body, tt.fetchErr
			}}
			src := NewSource(f)

			got, err := src.Historical(context.Background(), "AAPL")
			assert.Equal(t, []string{"/data/historical/AAPL.csv"}, f.paths)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.expectedLen)
			assert.Equal(t, "2025-01-01", got[0].Date)
			assert.Equal(t, 100.0, got[0].Close)
		})
	}
}

func TestSource_Prediction(t *testing.T) {
	t.Parallel()

	f := &mockFetcher{fetchFn: func(ctx context.Context, path string) (string, error) {
		return "date,actual,predicted,lowerBound,upperBound\n" +
			"2025-04-12,,188.76,186.89,190.63\n" +
			"2025-04-11,187.45,188.1,185.2,190.3\n", nil
	}}

	got, err := NewSource(f).Prediction(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"/data/predictions/AAPL.csv"}, f.paths)
	assert.Equal(t, "2025-04-11", got[0].Date)
	require.NotNil(t, got[0].Actual)
	assert.Nil(t, got[1].Actual)
}

// TestSource_WithStaticDataClient はhttptestサーバー経由で取得からの一連の流れを検証します。
func TestSource_WithStaticDataClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/historical/AAPL.csv":
			_, _ = w.Write([]byte("date,open,high,low,close,volume\n2025-01-01,98,101,97,100,900\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	src := NewSource(staticdata.NewClient(staticdata.Config{BaseURL: server.URL}, server.Client()))

	got, err := src.Historical(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = src.Prediction(context.Background(), "AAPL")
	assert.ErrorIs(t, err, domain.ErrNoDataset)
	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.Equal(t, SourceName, src.Name())
}
