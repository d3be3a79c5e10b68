package cli

import (
	"fmt"

	"recipe-service/cmd/config"
	"recipe-service/cmd/database/seed"
	"recipe-service/internal/utils"
	"recipe-service/pkg/aggregate"
	"recipe-service/pkg/category"
	"recipe-service/pkg/recipe"

	"github.com/spf13/cobra"
)

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load base categories and sample recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := config.ConnectDB()
			if err != nil {
				return err
			}
			if migrate {
				if err := runMigrations(db, log); err != nil {
					return err
				}
			}

			categories := category.NewCategoryRepository(db, log)
			recipes := recipe.NewRecipeService(
				recipe.NewRecipeRepository(db, log),
				categories,
				aggregate.NewWriter(db, log),
				utils.NewValidator(),
				log,
			)

			res, err := seed.Seed(cmd.Context(), db, categories, recipes, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d categories, %d recipes\n", res.Categories, res.Recipes)
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run migrations before seeding")

	return cmd
}
