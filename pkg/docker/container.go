package docker

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultVersion is the ClickHouse image tag used when none is configured
	DefaultVersion = "25.7"

	nativePort = nat.Port("9000/tcp")
	httpPort   = nat.Port("8123/tcp")
	initDir    = "/docker-entrypoint-initdb.d"
	configDir  = "/etc/clickhouse-server/config.d"
)

type (
	// DockerOptions represents options for running ClickHouse in Docker
	DockerOptions struct {
		// Version is the ClickHouse image tag (default: DefaultVersion)
		Version string

		// SeedDir holds *.sql scripts run once when the server first starts.
		// Relative paths are resolved against the working directory.
		SeedDir string

		// ConfigDir is an optional config.d directory to mount
		ConfigDir string
	}

	// Container manages one disposable ClickHouse server
	Container struct {
		options   DockerOptions
		container *clickhouse.ClickHouseContainer
	}
)

// New creates a Container with default options.
func New() *Container {
	return &Container{}
}

// NewWithOptions creates a Container with custom options.
func NewWithOptions(opts DockerOptions) *Container {
	return &Container{options: opts}
}

// Start pulls and starts the ClickHouse image and waits until it answers
// HTTP requests.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	version := c.options.Version
	if version == "" {
		version = DefaultVersion
	}

	mounts, err := c.mounts()
	if err != nil {
		return err
	}

	customizers := []testcontainers.ContainerCustomizer{
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(""),
		clickhouse.WithDatabase("default"),
		testcontainers.WithEnv(map[string]string{"CLICKHOUSE_DEFAULT_ACCESS_MANAGEMENT": "1"}),
		testcontainers.WithWaitStrategyAndDeadline(
			5*time.Minute,
			wait.
				NewHTTPStrategy("/").
				WithPort(httpPort).
				WithStatusCodeMatcher(func(status int) bool {
					return status == 200
				}),
		),
	}

	if len(mounts) > 0 {
		customizers = append(customizers, testcontainers.WithHostConfigModifier(func(hc *container.HostConfig) {
			hc.Mounts = append(hc.Mounts, mounts...)
		}))
	}

	ch, err := clickhouse.Run(ctx,
		fmt.Sprintf("clickhouse/clickhouse-server:%s-alpine", version),
		customizers...,
	)
	if err != nil {
		return errors.Wrap(err, "failed to start ClickHouse container")
	}

	c.container = ch
	return nil
}

// Stop terminates the container. Stopping a container that isn't running is
// a no-op.
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	if err != nil {
		return errors.Wrap(err, "failed to stop ClickHouse container")
	}

	return nil
}

// Options returns connection options for the clickhouse catalog dialect.
func (c *Container) Options(ctx context.Context) (catalog.Options, error) {
	if c.container == nil {
		return catalog.Options{}, errors.New("container is not running")
	}

	host, err := c.container.Host(ctx)
	if err != nil {
		return catalog.Options{}, errors.Wrap(err, "failed to get container host")
	}

	port, err := c.container.MappedPort(ctx, nativePort)
	if err != nil {
		return catalog.Options{}, errors.Wrap(err, "failed to get container port")
	}

	return catalog.Options{
		Dialect:  catalog.ClickHouse.Name,
		Host:     host,
		Port:     port.Int(),
		Service:  c.container.DbName,
		Username: c.container.User,
		Password: c.container.Password,
	}, nil
}

func (c *Container) mounts() ([]mount.Mount, error) {
	var mounts []mount.Mount

	for _, m := range []struct{ source, target string }{
		{c.options.SeedDir, initDir},
		{c.options.ConfigDir, configDir},
	} {
		if m.source == "" {
			continue
		}

		abs, err := filepath.Abs(m.source)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get absolute path for %s", m.source)
		}

		mounts = append(mounts, mount.Mount{
			Type:     mount.TypeBind,
			Source:   abs,
			Target:   m.target,
			ReadOnly: true,
		})
	}

	return mounts, nil
}
