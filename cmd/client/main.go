// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ocr-batch/internal/client"
	"github.com/MKhiriev/go-ocr-batch/internal/config"
	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/spf13/cobra"
)

const appName = "go-ocr-batch"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Submit up to two images to the OCR processing endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		printBuildInfo(buildInfo)

		cfg, err := loadConfig(flags)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}

		log := logger.NewClientLogger(appName, cfg.Log.File).WithLevel(cfg.Log.Level)

		app, err := client.NewApp(cfg, buildInfo, log)
		if err != nil {
			log.Err(err).Msg("init client app error")
			fmt.Fprintln(os.Stderr, err)
			return err
		}

		if err = app.Run(); err != nil {
			log.Err(err).Msg("client run error")
			return err
		}
		return nil
	}

	rootCmd.AddCommand(newSubmitCmd(flags, buildInfo), newVersionCmd(buildInfo))

	return rootCmd
}

func newSubmitCmd(flags *config.Flags, buildInfo models.AppBuildInfo) *cobra.Command {
	var skipOCR []string

	cmd := &cobra.Command{
		Use:   "submit FILE...",
		Short: "Submit images as one batch without the terminal UI",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}

			log := logger.NewLogger(appName).WithLevel(cfg.Log.Level)

			app, err := client.NewApp(cfg, buildInfo, log)
			if err != nil {
				log.Err(err).Msg("init client app error")
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := app.SubmitFiles(log.WithContext(ctx), args, skipOCR)
			if err != nil {
				log.Err(err).Msg("submit failed")
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Pretty())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&skipOCR, "skip-ocr", nil, "File base names to submit without OCR")

	return cmd
}

func newVersionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
		},
	}
}

func loadConfig(flags *config.Flags) (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}
	return cfg, nil
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
