package command

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"github.com/msomdec/course-api/internal/service"
	"github.com/msomdec/course-api/internal/validate"
)

func seedCommand() *cobra.Command {
	var (
		users    int
		courses  int
		password string
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "insert fake users and courses for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			if users < 1 || courses < 0 {
				return errors.New("--users must be at least 1 and --courses may not be negative")
			}
			ctx := cmd.Context()
			cfg := configFrom(ctx)

			db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			v := validate.New()
			auth, err := service.NewAuthService(db.Users(), v, cfg.BcryptCost)
			if err != nil {
				return err
			}
			courseService := service.NewCourseService(db.Courses(), db.Users(), v)

			faker := gofakeit.New(seed)
			out := cmd.OutOrStdout()
			for range users {
				user, err := auth.Register(ctx, service.RegisterInput{
					FirstName:    faker.FirstName(),
					LastName:     faker.LastName(),
					EmailAddress: faker.Email(),
					Password:     password,
				})
				if err != nil {
					return fmt.Errorf("seed user: %w", err)
				}
				for range courses {
					estimate := fmt.Sprintf("%d hours", 1+faker.IntN(40))
					_, err := courseService.Create(ctx, service.CreateCourseInput{
						Title:         courseTitle(faker),
						Description:   faker.Sentence(12 + faker.IntN(20)),
						UserID:        user.ID,
						EstimatedTime: &estimate,
					})
					if err != nil {
						return fmt.Errorf("seed course: %w", err)
					}
				}
				fmt.Fprintln(out, user.EmailAddress)
			}

			slog.InfoContext(ctx, "seeded database",
				slog.Int("users", users),
				slog.Int("courses", users*courses),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&users, "users", 3, "number of users to create")
	flags.IntVar(&courses, "courses", 2, "number of courses per user")
	flags.StringVar(&password, "password", "password123", "password shared by every seeded user")
	flags.Uint64Var(&seed, "seed", 0, "random seed; 0 picks one at random")
	return cmd
}

func courseTitle(f *gofakeit.Faker) string {
	patterns := []func(*gofakeit.Faker) string{
		func(f *gofakeit.Faker) string { return fmt.Sprintf("Build a %s %s", f.Adjective(), f.Noun()) },
		func(f *gofakeit.Faker) string { return fmt.Sprintf("Introduction to %s", f.HackerNoun()) },
		func(f *gofakeit.Faker) string { return fmt.Sprintf("Learn %s in a Weekend", f.ProgrammingLanguage()) },
	}
	return patterns[f.IntN(len(patterns))](f)
}
