package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amps-tools/ampswizard/internal/run"
	"github.com/amps-tools/ampswizard/internal/testutil"
)

const paramText = `#GENERAL
RUN_NAME api_run
SPECIES e-
#OUTPUT
OUTPUT_MODE shells
NSHELLS 3
`

func postText(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "text/plain", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeConfig(t *testing.T, r io.Reader) *run.Config {
	t.Helper()
	var cfg run.Config
	require.NoError(t, json.NewDecoder(r).Decode(&cfg))
	return &cfg
}

func TestHealth(t *testing.T) {
	ts, _ := testutil.StartWizard(t, nil)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCheckEndpoint(t *testing.T) {
	ts, _ := testutil.StartWizard(t, nil)

	t.Run("accepts real param text", func(t *testing.T) {
		resp := postText(t, ts.URL+"/api/check", paramText)
		var result struct {
			OK      bool   `json:"ok"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.OK)
	})

	t.Run("rejects foreign text with a message", func(t *testing.T) {
		resp := postText(t, ts.URL+"/api/check", "definitely not a param file")
		var result struct {
			OK      bool   `json:"ok"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.False(t, result.OK)
		assert.NotEmpty(t, result.Message)
	})
}

func TestLoadAndExportRoundTrip(t *testing.T) {
	ts, _ := testutil.StartWizard(t, nil)

	resp := postText(t, ts.URL+"/api/load", paramText)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loaded := decodeConfig(t, resp.Body)
	assert.Equal(t, "api_run", loaded.RunName)
	assert.Equal(t, "electron", loaded.Species)
	assert.Equal(t, run.OutputShells, loaded.OutputMode)
	assert.Equal(t, 3, loaded.NShells)

	exportResp, err := http.Get(ts.URL + "/api/export")
	require.NoError(t, err)
	defer exportResp.Body.Close()
	exported, err := io.ReadAll(exportResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(exported), "RUN_NAME")
	assert.Contains(t, string(exported), "api_run")
	assert.Contains(t, string(exported), "NSHELLS")
}

func TestLoadRejectionLeavesSessionUntouched(t *testing.T) {
	ts, _ := testutil.StartWizard(t, nil)

	resp := postText(t, ts.URL+"/api/load", paramText)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postText(t, ts.URL+"/api/load", "garbage with no headers")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	getResp, err := http.Get(ts.URL + "/api/config")
	require.NoError(t, err)
	defer getResp.Body.Close()
	cfg := decodeConfig(t, getResp.Body)
	assert.Equal(t, "api_run", cfg.RunName, "the rejected load must not mutate the session")
}

func TestConfigMergeEndpoint(t *testing.T) {
	ts, _ := testutil.StartWizard(t, nil)

	body, err := json.Marshal(map[string]string{
		"KP":      "6",
		"SPECIES": "he2+",
		"FOO_BAR": "ignored",
	})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/config", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cfg := decodeConfig(t, resp.Body)
	assert.Equal(t, 6.0, cfg.Kp)
	assert.Equal(t, "alpha", cfg.Species)
	assert.Equal(t, 2.0, cfg.Charge, "species inference applies on merged writes too")
}

func TestConfigRejectsBadBody(t *testing.T) {
	ts, _ := testutil.StartWizard(t, nil)

	resp, err := http.Post(ts.URL+"/api/config", "application/json", strings.NewReader("[1,2,3]"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
