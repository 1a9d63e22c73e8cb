//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := NewServer(handler, "8080")

	assert.NotNil(t, server)
	assert.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
}

func TestServer_Shutdown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := NewServer(handler, "8080")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = server.httpServer.Shutdown(ctx)
	}()

	err := server.Shutdown()
	assert.NoError(t, err)
}

func TestServer_Run(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := NewServer(handler, "0")

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	time.Sleep(100 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "http://localhost:0/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	proc, _ := os.FindProcess(os.Getpid())
	_ = proc.Signal(syscall.SIGTERM)

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Server did not shutdown in time")
	}
}

func TestServer_Run_WithError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := NewServer(handler, "invalid-port")

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		proc, _ := os.FindProcess(os.Getpid())
		_ = proc.Signal(syscall.SIGTERM)
		time.Sleep(100 * time.Millisecond)
	}
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := NewServer(handler, "0")

	done := make(chan bool, 1)
	go func() {
		err := server.Run()
		assert.NoError(t, err)
		done <- true
	}()

	time.Sleep(50 * time.Millisecond)

	proc, _ := os.FindProcess(os.Getpid())
	_ = proc.Signal(syscall.SIGTERM)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "Server did not shutdown gracefully")
	}
}


func TestNewServer_Options(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name         string
		opts         []ServerOption
		writeTimeout time.Duration
		hooks        int
	}{
		{name: "short request timeout keeps default", opts: []ServerOption{WithRequestTimeout(5 * time.Second)}, writeTimeout: 15 * time.Second},
		{name: "long request timeout widens write timeout", opts: []ServerOption{WithRequestTimeout(30 * time.Second)}, writeTimeout: 35 * time.Second},
		{name: "nil hook ignored", opts: []ServerOption{WithShutdownHook(nil)}, writeTimeout: 15 * time.Second},
		{name: "hook registered", opts: []ServerOption{WithShutdownHook(func() {})}, writeTimeout: 15 * time.Second, hooks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(handler, "8080", tt.opts...)
			assert.Equal(t, tt.writeTimeout, server.httpServer.WriteTimeout)
			assert.Len(t, server.onShutdown, tt.hooks)
		})
	}
}

func TestServer_ShutdownRunsHooksInReverseOrder(t *testing.T) {
	var order []string
	server := NewServer(http.NotFoundHandler(), "0",
		WithShutdownHook(func() { order = append(order, "database") }),
		WithShutdownHook(func() { order = append(order, "audit") }),
	)

	require.NoError(t, server.Shutdown())
	require.NoError(t, server.Shutdown())

	assert.Equal(t, []string{"audit", "database"}, order)
}
