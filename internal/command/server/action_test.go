package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleExpand(t *testing.T) {
	rec := doRequest(t, "/expand?notation=n%5B01-03%5D,n01")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp expandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, []string{"n01", "n02", "n03"}, resp.Hosts)
	assert.Empty(t, resp.Rendered)
}

func TestHandleExpand_Template(t *testing.T) {
	rec := doRequest(t, "/expand?notation=n%5B01-02%5D&template=%7B%7D.example.com&separator=,")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp expandResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Empty(t, resp.Hosts)
	assert.Equal(t, "n01.example.com,n02.example.com", resp.Rendered)
}

func TestHandleExpand_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		errMsg string
	}{
		{
			name:   "missing notation",
			target: "/expand",
			errMsg: "missing notation parameter",
		},
		{
			name:   "unmatched bracket",
			target: "/expand?notation=n%5B01-04",
			errMsg: "unmatched bracket",
		},
		{
			name:   "template without placeholder",
			target: "/expand?notation=n01&template=static",
			errMsg: "no placeholder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, tt.target)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp["error"], tt.errMsg)
		})
	}
}
