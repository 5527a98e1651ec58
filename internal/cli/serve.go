package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/clintonb/alexa-skills/internal/config"
	"github.com/clintonb/alexa-skills/internal/edx"
	"github.com/clintonb/alexa-skills/internal/enrollment"
	"github.com/clintonb/alexa-skills/internal/gateway"
	"github.com/clintonb/alexa-skills/internal/skill"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "edx-skill.yaml"

func newServeCmd() *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the voice skill server",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				path = defaultConfigFile
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			if port != 0 {
				cfg.Server.Port = port
			}
			if bind != "" {
				cfg.Server.Bind = bind
			}

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				for _, issue := range issues {
					log.Error().Str("path", issue.Path).Msg(issue.Message)
				}
				return fmt.Errorf("config validation failed with %d issue(s)", len(issues))
			}

			// Block until SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			tokens := edx.NewTokenSource(ctx, edx.TokenConfig{
				AccessTokenURL: cfg.OAuth.AccessTokenURL,
				ClientID:       cfg.OAuth.ClientID,
				ClientSecret:   cfg.OAuth.ClientSecret,
			})

			svc := enrollment.NewService(
				edx.NewEnrollmentClient(cfg.API.LMSURL),
				edx.NewCatalogClient(cfg.API.CatalogURL, tokens),
				log,
			)

			dispatcher := skill.NewDispatcher(svc, log)
			srv := gateway.New(cfg.Server, dispatcher, log)

			log.Info().
				Str("lms", cfg.API.LMSURL).
				Str("catalog", cfg.API.CatalogURL).
				Msg("upstream clients configured")

			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override listen port")
	cmd.Flags().StringVar(&bind, "bind", "", "override bind mode (loopback, lan, custom)")

	return cmd
}
