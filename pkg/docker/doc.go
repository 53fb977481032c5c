// Package docker runs disposable ClickHouse servers for trying out and
// testing the explorer.
//
// A Container wraps a testcontainers ClickHouse instance. Optional seed
// scripts are mounted into the server's init directory so the catalog has
// something to browse on first start.
//
// # Usage Example
//
//	container := docker.NewWithOptions(docker.DockerOptions{
//		Version: "25.7",
//		SeedDir: "./testdata/seed",
//	})
//
//	ctx := context.Background()
//	defer container.Stop(ctx)
//
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	opts, err := container.Options(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := catalog.Connect(ctx, opts)
package docker
