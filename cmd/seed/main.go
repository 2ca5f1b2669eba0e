// Command seed fills the seashells table with sample records.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dmitrijs2005/seashells/internal/seed"
	"github.com/dmitrijs2005/seashells/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/seashells/internal/server/services"
)

func main() {
	if err := newCLIApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding database: %v\n", err)
		os.Exit(1)
	}
}

// newCLIApp creates the seed command line.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:  "seed",
		Usage: "Populate the database with sample seashells",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dsn", EnvVars: []string{"DATABASE_URL"}, Usage: "Database DSN (postgres:// or sqlite://); overrides the --username/--password/--host/--db parts"},
			&cli.StringFlag{Name: "username", Value: "seashell_user", Usage: "Database username"},
			&cli.StringFlag{Name: "password", Value: "seashell_password", Usage: "Database password"},
			&cli.StringFlag{Name: "host", Value: "localhost:5432", Usage: "Database host:port"},
			&cli.StringFlag{Name: "db", Value: "seashell_db", Usage: "Database name"},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Value: seed.SourceBuiltin, Usage: "builtin, a JSON file path or s3://bucket/key"},
			&cli.StringFlag{Name: "s3-region", EnvVars: []string{"AWS_REGION"}, Value: "us-east-1", Usage: "S3 region"},
			&cli.StringFlag{Name: "s3-endpoint", Usage: "S3-compatible endpoint, e.g. http://127.0.0.1:9000"},
			&cli.StringFlag{Name: "s3-user", Usage: "S3 access key"},
			&cli.StringFlag{Name: "s3-password", Usage: "S3 secret key"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Add data even if the table is not empty"},
		},
		Action: run,
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func run(c *cli.Context) error {
	ctx := c.Context

	dsn := c.String("dsn")
	if dsn == "" {
		dsn = seed.PostgresDSN(c.String("username"), c.String("password"), c.String("host"), c.String("db"))
	}

	items, err := seed.Load(ctx, c.String("source"), seed.S3Options{
		Region:   c.String("s3-region"),
		Endpoint: c.String("s3-endpoint"),
		User:     c.String("s3-user"),
		Password: c.String("s3-password"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, "Starting database seed...")
	fmt.Fprintln(c.App.Writer, "Initializing database tables...")

	db, m, err := repomanager.Open(ctx, dsn, repomanager.Options{})
	if err != nil {
		return err
	}
	defer db.Close()

	s := seed.NewSeeder(services.NewSeashellService(db, m), c.Bool("yes"))
	s.SetOutput(c.App.Writer)

	_, err = s.Run(ctx, items)
	return err
}
