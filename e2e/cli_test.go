package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockfall/blockfall/internal/api"
	"github.com/blockfall/blockfall/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "blockfall-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/blockfall")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		HubManager:        app.HubManager,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for parsing CLI JSON output

type activePieceResponse struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type sessionResponse struct {
	ID          string              `json:"id"`
	Board       [][]int             `json:"board"`
	ActivePiece activePieceResponse `json:"active_piece"`
	Score       int                 `json:"score"`
	GameOver    bool                `json:"game_over"`
}

type sessionListResponse struct {
	Sessions []string `json:"sessions"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func TestCLI_Health(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var health healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestCLI_SessionLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create session
	output, err := cli.run("session", "create")
	require.NoError(t, err, "output: %s", output)

	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	require.NotEmpty(t, created.ID)
	assert.False(t, created.GameOver)
	assert.Zero(t, created.Score)
	t.Logf("Created session %s with piece %s", created.ID, created.ActivePiece.Kind)

	// Session appears in list
	output, err = cli.run("session", "list")
	require.NoError(t, err, "output: %s", output)
	var list sessionListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Contains(t, list.Sessions, created.ID)

	// Show reproduces the session
	output, err = cli.run("session", "show", created.ID)
	require.NoError(t, err, "output: %s", output)
	var shown sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &shown))
	assert.Equal(t, created.ID, shown.ID)
	assert.Equal(t, created.ActivePiece.Kind, shown.ActivePiece.Kind)

	// Delete
	output, err = cli.run("session", "delete", created.ID)
	require.NoError(t, err, "output: %s", output)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Session deleted", msg.Message)

	// Gone after delete
	output, err = cli.run("session", "show", created.ID)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_Play(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "create")
	require.NoError(t, err, "output: %s", output)
	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	// Move left twice and drop one step
	output, err = cli.run("play", created.ID, "left", "left", "down")
	require.NoError(t, err, "output: %s", output)

	var sess sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &sess))
	assert.Equal(t, created.ActivePiece.X-2, sess.ActivePiece.X)
	assert.Equal(t, created.ActivePiece.Y+1, sess.ActivePiece.Y)
	assert.Equal(t, 1, sess.Score) // manual down bonus

	// Restart resets the score
	output, err = cli.run("play", created.ID, "restart")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &sess))
	assert.Zero(t, sess.Score)
	assert.False(t, sess.GameOver)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Unknown session
	output, err := cli.run("session", "show", "INVALID")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Unknown action
	out2, err := cli.run("session", "create")
	require.NoError(t, err)
	var created sessionResponse
	require.NoError(t, json.Unmarshal([]byte(out2), &created))

	output, err = cli.run("play", created.ID, "sideways")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "invalid")
}
