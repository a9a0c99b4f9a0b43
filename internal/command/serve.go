package command

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/msomdec/course-api/internal/handler"
	"github.com/msomdec/course-api/internal/server"
	"github.com/msomdec/course-api/internal/service"
	"github.com/msomdec/course-api/internal/validate"
)

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "migrate the database and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
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
			courses := service.NewCourseService(db.Courses(), db.Users(), v)

			mux := http.NewServeMux()
			handler.RegisterRoutes(mux, auth, courses, db)

			return server.Run(ctx, cfg.Addr, handler.Chain(mux, cfg.CORS.AllowedOrigins))
		},
	}
	cmd.Flags().String("addr", ":5000", "address to listen on")
	return cmd
}
