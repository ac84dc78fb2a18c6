package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"agrimart/internal/config"
	"agrimart/internal/database"
	"agrimart/internal/database/migration"
	"agrimart/internal/repository/postgres"
	"agrimart/internal/service"
)

// openDB is replaced in tests.
var openDB = func() (*sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.NewPostgres(cfg.Database)
}

func withDB(fn func(ctx context.Context, db *sql.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(cmd.Context(), db)
	}
}

func newRootCmd(log zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "agrimartctl",
		Short:         "Maintenance commands for the agrimart database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(log), newResetCmd(log), newUsersCmd())
	return root
}

func newMigrateCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and seed government schemes",
		RunE: withDB(func(ctx context.Context, db *sql.DB) error {
			return migration.EnsureMigrated(ctx, db, log)
		}),
	}
}

func newResetCmd(log zerolog.Logger) *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop every table and recreate the schema",
		PreRunE: func(*cobra.Command, []string) error {
			if !confirm {
				return errors.New("reset deletes all data; pass --yes to confirm")
			}
			return nil
		},
		RunE: withDB(func(ctx context.Context, db *sql.DB) error {
			return migration.Reset(ctx, db, log)
		}),
	}
	cmd.Flags().BoolVar(&confirm, "yes", false, "confirm dropping all data")
	return cmd
}

func newUsersCmd() *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Inspect registered users",
	}

	var limit, offset int
	list := &cobra.Command{
		Use:   "list",
		Short: "List users, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(ctx context.Context, db *sql.DB) error {
				svc := service.NewUserService(postgres.NewUserPostgres(db))
				res, err := svc.List(ctx, limit, offset)
				if err != nil {
					return err
				}
				return printUsers(cmd.OutOrStdout(), res)
			})(cmd, args)
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "maximum users to show")
	list.Flags().IntVar(&offset, "offset", 0, "users to skip")
	users.AddCommand(list)
	return users
}

func printUsers(w io.Writer, res *service.UserListResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PHONE\tNAME\tROLE\tLOCATION\tJOINED")
	for _, u := range res.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.Phone, u.Name, u.Role, u.Location, u.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(tw, "\n%d of %d users\n", len(res.Items), res.Total)
	return tw.Flush()
}
