// Package docker runs throwaway MySQL and PostgreSQL servers for
// integration tests.
//
// Containers are managed through testcontainers-go and removed on Stop.
// The DSN returned by GetDSN can be handed straight to database.Open.
//
// # Usage Example
//
//	container := docker.New(dialect.MySQL)
//
//	ctx := context.Background()
//	defer container.Stop(ctx)
//
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	dsn, _ := container.GetDSN()
//	client, _ := database.Open(ctx, database.Options{
//		Dialect: container.Dialect(),
//		URL:     dsn,
//	})
//	defer client.Close()
//
// SQLite needs no server and has no container.
package docker
