package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"top-walker/pkg/auth"
	"top-walker/pkg/client"
	"top-walker/pkg/config"
	"top-walker/pkg/controller"
)

func main() {
	var (
		cfgPath string
		baseURL string
		debug   bool
	)

	root := &cobra.Command{
		Use:           "top-walker",
		Short:         "Terminal client for the topmanager meeting API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cfg == nil {
				cfg = &config.Config{}
			}
			if baseURL != "" {
				cfg.URL = baseURL
			}
			if cfg.URL == "" {
				cfg.URL = "http://localhost:8080"
			}
			if debug {
				cfg.Debug = true
			}

			f, err := os.OpenFile("top-walker.log", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			log.SetFormatter(&log.JSONFormatter{})
			log.SetOutput(f)
			if cfg.Debug {
				log.SetLevel(log.DebugLevel)
			}

			// no token, no authenticated calls: auth failure is fatal
			provider := auth.NewProvider(cfg.TokenURL, cfg.ClientID, cfg.ClientSecret, cfg.Username, cfg.Password)
			token, err := provider.AccessToken(context.Background())
			if err != nil {
				return err
			}

			return controller.NewController(client.New(cfg.URL, token), cfg.URL).Run()
		},
	}

	root.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default "+config.DefaultPath+")")
	root.Flags().StringVarP(&baseURL, "url", "u", "", "API base URL (overrides config)")
	root.Flags().BoolVar(&debug, "debug", false, "debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
