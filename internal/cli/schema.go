package cli

import (
	intconfig "moviebrowser/internal/config"
	intdb "moviebrowser/internal/db"

	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the movies table if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			setupLogging(env, cmd.ErrOrStderr())

			db, err := intconfig.ConnectDB(cmd.Context(), env.DB)
			if err != nil {
				return err
			}
			defer intconfig.CloseDB()

			created, err := intdb.EnsureMoviesSchema(cmd.Context(), db)
			if err != nil {
				return err
			}
			if created {
				cmd.Println("created table", intdb.MoviesTable)
			} else {
				cmd.Println("table", intdb.MoviesTable, "already exists")
			}
			return nil
		},
	}
}
