package handler

import (
	"Agora/internal/service"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_GetPostStats(t *testing.T) {
	svc := &fakeStatsService{}
	h := NewStatsHandler(svc)
	r := newEngine()
	r.GET("/api/posts/stats", h.GetPostStats)

	w := request(r, http.MethodGet, "/api/posts/stats?start_date=01-03-2025&end_date=31-03-2025", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "daily", svc.period)
	assert.Equal(t, "01-03-2025", svc.start)
	assert.JSONEq(t, `{"status":"success","data":{"range":"daily","total":0,"data":null}}`, w.Body.String())

	w = request(r, http.MethodGet, "/api/posts/stats?start_date=01-03-2025&end_date=31-03-2025&period=weekly", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "weekly", svc.period)

	w = request(r, http.MethodGet, "/api/posts/stats?start_date=01-03-2025&end_date=31-03-2025&period=yearly", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(r, http.MethodGet, "/api/posts/stats?end_date=31-03-2025", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = service.ErrParamInvalid
	w = request(r, http.MethodGet, "/api/posts/stats?start_date=31-02-2025&end_date=31-03-2025", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
