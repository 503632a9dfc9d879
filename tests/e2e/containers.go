//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

// endpoint is where a container's port is reachable from the test process.
type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) Addr() string { return e.Host + ":" + e.Port.Port() }

// sharedContainer is started at most once per test process and reused by
// every suite in it. The testcontainers reaper removes it when the process
// exits.
type sharedContainer struct {
	name    string
	port    nat.Port
	request func() testcontainers.ContainerRequest

	once sync.Once
	c    testcontainers.Container
	ep   endpoint
	err  error
}

func (s *sharedContainer) endpoint(t *testing.T) endpoint {
	t.Helper()
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		s.c, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: s.request(),
			Started:          true,
		})
		if s.err != nil {
			return
		}
		var mapped nat.Port
		if mapped, s.err = s.c.MappedPort(ctx, s.port); s.err != nil {
			return
		}
		var host string
		if host, s.err = s.c.Host(ctx); s.err != nil {
			return
		}
		s.ep = endpoint{Host: host, Port: mapped}
		slog.Info("container ready", "container", s.name, "addr", s.ep.Addr())
	})
	require.NoError(t, s.err, "failed to start %s container", s.name)
	return s.ep
}

var postgresContainer = &sharedContainer{
	name: "postgres",
	port: "5432/tcp",
	request: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// durability is irrelevant for a throwaway database
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return adminDSN(endpoint{Host: host, Port: port})
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "resort-booking-e2e"},
		}
	},
}

var redisContainer = &sharedContainer{
	name: "redis",
	port: "6379/tcp",
	request: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "resort-booking-e2e"},
		}
	},
}

func adminDSN(ep endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, ep.Addr())
}
