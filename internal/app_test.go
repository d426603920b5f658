package internal

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muzikology/Live2Share/internal/configs"
)

func testConfig(seeded bool) *configs.AppConfig {
	return &configs.AppConfig{
		AppName:        "live2share-test",
		Rest:           configs.RESTconfig{PORT: "0", CORSAllowedOrigins: []string{"http://localhost:5173"}},
		StdoutLogger:   configs.StdoutLogConfig{Level: "error"},
		SeedSampleData: seeded,
		BcryptCost:     4,
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewApp_SeededWiring(t *testing.T) {
	app, err := newApp(testConfig(true), io.Discard)
	require.NoError(t, err)
	defer app.close()

	assert.Equal(t, http.StatusOK, get(t, app.handler, "/healthz").Code)

	rec := get(t, app.handler, "/api/v1/student/accommodations")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 4)

	rec = get(t, app.handler, "/api/v1/realty/properties")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 4)
}

func TestNewApp_EmptyStores(t *testing.T) {
	app, err := newApp(testConfig(false), io.Discard)
	require.NoError(t, err)
	defer app.close()

	rec := get(t, app.handler, "/api/v1/realty/properties")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNewApp_BadRabbitURL(t *testing.T) {
	cfg := testConfig(false)
	cfg.RabbitMQ = configs.RabbitMQConfig{Enabled: true, URL: "http://not-amqp", Exchange: "live2share.events"}

	_, err := newApp(cfg, io.Discard)
	assert.Error(t, err)
}
