package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jrsteele09/go-aqua-client/internal/config"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, port string) config.Config {
	t.Helper()
	t.Setenv("AQUA_PORT", port)
	t.Setenv("AQUA_ENV", "test")
	c, err := config.Load("")
	require.NoError(t, err)
	return c
}

func TestRun_BindFailureIsReturned(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	c := loadConfig(t, fmt.Sprintf(":%d", ln.Addr().(*net.TCPAddr).Port))

	err = run(context.Background(), c)
	require.Error(t, err)
	require.False(t, errors.Is(err, errPanicRecovered), "bind failures must not trigger a restart")
}

func TestRun_StopsOnCancel(t *testing.T) {
	c := loadConfig(t, ":0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx, c))
}
