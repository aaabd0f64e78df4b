package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/locvowork/employee_registry/internal/bootstrap"
	"github.com/locvowork/employee_registry/internal/config"
	"github.com/locvowork/employee_registry/internal/export"
	"github.com/locvowork/employee_registry/internal/logger"
	"github.com/locvowork/employee_registry/internal/menu"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var seedFile string

	initApp := func(ctx context.Context) (*bootstrap.App, error) {
		app := bootstrap.NewApp()
		if err := app.Initialize(ctx, seedFile); err != nil {
			logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
			return nil, err
		}
		return app, nil
	}

	root := &cobra.Command{
		Use:          "registry",
		Short:        "In-memory employee registry with bonus and payroll calculation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := initApp(ctx)
			if err != nil {
				return err
			}
			return menu.New(app.Service, in, out, config.DefaultEnvConfig.EXPORT_PATH).Run(ctx)
		},
	}
	root.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML roster loaded at startup (overrides SEED_FILE)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			logger.InfoLog(cmd.Context(), "Listening on :%s", config.DefaultEnvConfig.APP_PORT)
			return app.Run()
		},
	}

	var outPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the seeded roster and payroll to an xlsx file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := initApp(ctx)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = config.DefaultEnvConfig.EXPORT_PATH
			}
			exporter := export.NewRosterExporter(app.Service.List(ctx), app.Service.Payroll(ctx))
			if err := exporter.ToFile(outPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "Employees exported to %s.\n", outPath)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (defaults to EXPORT_PATH)")

	root.AddCommand(serve, exportCmd)
	return root
}
