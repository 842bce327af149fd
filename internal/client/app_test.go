// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tile-sync/internal/logger"
	"github.com/MKhiriev/go-tile-sync/internal/mock"
	"github.com/MKhiriev/go-tile-sync/internal/service"
	"github.com/MKhiriev/go-tile-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type testApp struct {
	*App
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	clipboard []string
}

func newTestApp(t *testing.T, stdin string) *testApp {
	t.Helper()
	ta := &testApp{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	ta.App = NewApp(models.NewAppBuildInfo("1.0.0", "2026-10-18", "cafe"), strings.NewReader(stdin), ta.stdout, ta.stderr)
	ta.copyToClipboard = func(s string) error {
		ta.clipboard = append(ta.clipboard, s)
		return nil
	}
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.Run(context.Background(), append([]string{appName}, args...))
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const sampleBatch = `[
	{"tileX":12,"tileY":34,"poiUpdateType":"Sync","reviewUpdateType":"None"},
	{"tileX":12,"tileY":35,"poiUpdateType":"Delete","reviewUpdateType":"Export","extra":1}
]`

// ── decode ────────────────────────────────────────────────────────────────────

func TestApp_Decode_StdinSingleObject(t *testing.T) {
	ta := newTestApp(t, `{"poiUpdateType":"Delete","ignored":[1,2,3]}`)

	require.NoError(t, ta.run("decode"))
	assert.Equal(t, `{"tileX":0,"tileY":0,"poiUpdateType":"Delete","reviewUpdateType":"None"}`+"\n", ta.stdout.String())
	assert.Empty(t, ta.stderr.String())
}

func TestApp_Decode_FileAsIndentedArray(t *testing.T) {
	ta := newTestApp(t, "")
	path := writeFile(t, "one.json", `{"tileX":7}`)

	require.NoError(t, ta.run("decode", "--input", path, "--array", "--indent"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &got))
	require.Len(t, got, 1)
	assert.EqualValues(t, 7, got[0]["tileX"])
	assert.Contains(t, ta.stdout.String(), "\n  {\n")
}

func TestApp_Decode_Table(t *testing.T) {
	ta := newTestApp(t, sampleBatch)

	require.NoError(t, ta.run("decode", "--format", "table"))

	out := ta.stdout.String()
	for _, want := range []string{"TILE", "POI", "REVIEW", "12/34", "12/35", "Sync", "Delete", "Export"} {
		assert.Contains(t, out, want)
	}
}

func TestApp_Decode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr error
	}{
		{name: "unknown variant", stdin: `{"reviewUpdateType":"Bogus"}`, args: []string{"decode"}, wantErr: models.ErrUnknownVariant},
		{name: "not json", stdin: `nope`, args: []string{"decode"}, wantErr: models.ErrParse},
		{name: "empty input", stdin: ``, args: []string{"decode", "--input", "-"}, wantErr: service.ErrEmptyDocument},
		{name: "missing file", args: []string{"decode", "--input", "/nonexistent/statuses.json"}, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, tt.stdin)
			err := ta.run(tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, ExitError, ExitCode(err))
			assert.Empty(t, ta.stdout.String())
		})
	}
}

// TestApp_Decode_UsesService verifies that decode hands the configured input
// and output options to the service layer.
func TestApp_Decode_UsesService(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockSyncStatusService(ctrl)

	ta := newTestApp(t, `{"tileX":1}`)
	ta.newServices = func(*logger.Logger) *service.Services {
		return &service.Services{SyncStatusService: svc}
	}

	statuses := []models.SyncStatus{{TileX: 1}}
	gomock.InOrder(
		svc.EXPECT().Decode(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r io.Reader) ([]models.SyncStatus, error) {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, `{"tileX":1}`, string(data))
				return statuses, nil
			}),
		svc.EXPECT().Encode(gomock.Any(), ta.stdout, statuses, models.EncodeOptions{Indent: true, AsArray: true}).
			Return(nil),
	)

	require.NoError(t, ta.run("decode", "--indent", "--array"))
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestApp_Validate_AllValid(t *testing.T) {
	ta := newTestApp(t, sampleBatch)

	require.NoError(t, ta.run("validate"))

	var report models.ValidationReport
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &report))
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 2, report.Tiles)
	assert.Equal(t, 1, report.PoiUpdateTypes[models.SyncStatusSync])
	assert.Equal(t, 1, report.ReviewUpdateTypes[models.SyncStatusExport])
}

func TestApp_Validate_Failures(t *testing.T) {
	ta := newTestApp(t, `[{"tileX":1},{"poiUpdateType":"Bogus"},{"tileY":"x"}]`)

	err := ta.run("validate", "--indent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.Contains(t, err.Error(), "2 of 3")

	var report models.ValidationReport
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &report))
	require.Len(t, report.Failures, 2)
	assert.Equal(t, 1, report.Failures[0].Index)
	assert.Equal(t, "poiUpdateType", report.Failures[0].Key)
	assert.Equal(t, 2, report.Failures[1].Index)
	assert.Equal(t, "tileY", report.Failures[1].Key)
}

func TestApp_Validate_Table(t *testing.T) {
	ta := newTestApp(t, `[{"poiUpdateType":"Export"},{"reviewUpdateType":"Nope"}]`)

	err := ta.run("validate", "-f", "table")
	assert.ErrorIs(t, err, ErrValidationFailed)

	out := ta.stdout.String()
	assert.Contains(t, out, "SYNC STATUS REPORT")
	assert.Contains(t, out, "Total: 2  Valid: 1  Rejected: 1  Distinct tiles: 1")
	assert.Contains(t, out, "UPDATE TYPE")
	assert.Contains(t, out, `[1] unknown sync status type "Nope"`)
}

func TestApp_Validate_DocumentError(t *testing.T) {
	ta := newTestApp(t, `[{"tileX":1}`)

	err := ta.run("validate")
	assert.ErrorIs(t, err, models.ErrParse)
	assert.NotErrorIs(t, err, ErrValidationFailed)
	assert.Empty(t, ta.stdout.String())
}

// ── encode ────────────────────────────────────────────────────────────────────

func TestApp_Encode(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.run("encode", "--tile-x", "-3", "--tile-y", "40", "--poi", "Export", "--review", "Sync"))
	assert.Equal(t, `{"tileX":-3,"tileY":40,"poiUpdateType":"Export","reviewUpdateType":"Sync"}`+"\n", ta.stdout.String())
	assert.Empty(t, ta.clipboard)
}

func TestApp_Encode_Defaults(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.run("encode"))
	assert.Equal(t, `{"tileX":0,"tileY":0,"poiUpdateType":"None","reviewUpdateType":"None"}`+"\n", ta.stdout.String())
}

func TestApp_Encode_Copy(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.run("encode", "-x", "1", "-y", "2", "--poi", "Delete", "--copy"))
	require.Len(t, ta.clipboard, 1)
	assert.Equal(t, `{"tileX":1,"tileY":2,"poiUpdateType":"Delete","reviewUpdateType":"None"}`, ta.clipboard[0])
}

func TestApp_Encode_CopyError(t *testing.T) {
	ta := newTestApp(t, "")
	ta.copyToClipboard = func(string) error { return assert.AnError }

	err := ta.run("encode", "--copy")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "clipboard")
}

func TestApp_Encode_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown poi", args: []string{"encode", "--poi", "Bogus"}},
		{name: "lowercase review", args: []string{"encode", "--review", "sync"}},
		{name: "tile x too large", args: []string{"encode", "--tile-x", "2147483648"}},
		{name: "tile y too small", args: []string{"encode", "--tile-y", "-2147483649"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			err := ta.run(tt.args...)
			assert.ErrorIs(t, err, ErrInvalidFlag)
			assert.Empty(t, ta.stdout.String())
		})
	}
}

// ── version ───────────────────────────────────────────────────────────────────

func TestApp_Version(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.run("version"))
	assert.Equal(t, "Build version: 1.0.0\nBuild date: 2026-10-18\nBuild commit: cafe\n", ta.stdout.String())
}

// ── configuration and logging ─────────────────────────────────────────────────

func TestApp_ConfigFileSelectsFormat(t *testing.T) {
	cfgPath := writeFile(t, "syncstatus.yaml", "output:\n  format: table\n")
	ta := newTestApp(t, sampleBatch)

	require.NoError(t, ta.run("--config", cfgPath, "decode"))
	assert.Contains(t, ta.stdout.String(), "12/35")
}

func TestApp_EnvSelectsInput(t *testing.T) {
	t.Setenv("SYNCSTATUS_INPUT_PATH", writeFile(t, "in.json", `{"tileY":9}`))
	ta := newTestApp(t, "")

	require.NoError(t, ta.run("decode"))
	assert.Contains(t, ta.stdout.String(), `"tileY":9`)
}

func TestApp_InvalidConfig(t *testing.T) {
	err := newTestApp(t, "{}").run("--log-level", "chatty", "decode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting configs")

	err = newTestApp(t, "{}").run("decode", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output configuration")
}

func TestApp_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "syncstatus.log")
	ta := newTestApp(t, `{"tileX":1}`)

	require.NoError(t, ta.run("--log-level", "debug", "--log-file", logPath, "decode"))
	assert.Empty(t, ta.stderr.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.NotEmpty(t, lines)

	runIDs := map[string]struct{}{}
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, appName, entry["role"])
		id, _ := entry["run_id"].(string)
		runIDs[id] = struct{}{}
	}
	assert.Len(t, runIDs, 1, "all entries of one run share a run_id")
	assert.Contains(t, string(data), "sync statuses decoded")
}

func TestApp_DebugLogsToStderr(t *testing.T) {
	ta := newTestApp(t, `{}`)

	require.NoError(t, ta.run("--log-level", "debug", "decode"))
	assert.Contains(t, ta.stderr.String(), "session started")
	assert.NotContains(t, ta.stdout.String(), "session started")
}

// ── ExitCode ──────────────────────────────────────────────────────────────────

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(assert.AnError))
	assert.Equal(t, ExitValidationFailed, ExitCode(ErrValidationFailed))
}
