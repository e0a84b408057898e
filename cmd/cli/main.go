package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fleetcalc/adapters/api"
	"fleetcalc/adapters/excel"
	"fleetcalc/adapters/scenariofile"
	"fleetcalc/app"
	"fleetcalc/internal/analyzer"
	"fleetcalc/internal/config"
	"fleetcalc/internal/logging"
	"fleetcalc/internal/render"
	"fleetcalc/ports"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "fleetcalc",
		Short:         "Exact outcome distributions for naval combat scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newExportCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type cliEnv struct {
	cfg    *config.Config
	logger *zap.Logger
}

func setup() (*cliEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return &cliEnv{cfg: cfg, logger: logger}, nil
}

// sourceFor picks the scenario reader by file extension.
func (rt *cliEnv) sourceFor(path string) ports.ScenarioSource {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return excel.NewScenarioReader(rt.logger)
	}
	return scenariofile.NewLoader(rt.logger)
}

func (rt *cliEnv) service(source ports.ScenarioSource) *app.AnalysisService {
	return app.NewAnalysisService(analyzer.New(nil), source, rt.cfg.Analysis.Workers, rt.logger)
}

func newAnalyzeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "analyze [scenario]",
		Short: "Analyze a scenario file and print the report",
		Long: `Analyze a JSON or .xlsx scenario and print every ship's outcome distributions.

Example: fleetcalc analyze sortie.json --output markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.logger.Sync()

			result, err := rt.service(rt.sourceFor(args[0])).AnalyzeRef(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			format, err := render.ParseFormat(output)
			if err != nil {
				return err
			}
			body, err := render.Render(result, format)
			if err != nil {
				return err
			}
			_, err = out.Write(body)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "markdown", "Output format: json, markdown or html")
	return cmd
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [scenario]",
		Short: "Analyze a scenario and save the result as an .xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.logger.Sync()

			if out == "" {
				if err := os.MkdirAll(rt.cfg.Report.Dir, 0o755); err != nil {
					return err
				}
				base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				out = filepath.Join(rt.cfg.Report.Dir, base+".xlsx")
			}

			svc := rt.service(rt.sourceFor(args[0]))
			result, err := svc.Export(cmd.Context(), args[0], excel.NewReportWriter(rt.logger), out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "analysis %s written to %s\n", result.ID, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Workbook path (default: <report dir>/<scenario>.xlsx)")
	return cmd
}

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.logger.Sync()
			if port != "" {
				rt.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, rt)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides FLEETCALC_PORT)")
	return cmd
}

func serve(ctx context.Context, rt *cliEnv) error {
	srv := &http.Server{
		Addr:        rt.cfg.Server.Addr(),
		Handler:     api.NewServer(rt.service(nil), rt.logger),
		ReadTimeout: rt.cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		rt.logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		rt.logger.Info("shutting down")
		return srv.Shutdown(context.Background())
	}
}
