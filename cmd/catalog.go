package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, validate, or serve quiz catalogs",
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the subjects of the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c := catalog.NewLoader(cfg.CatalogSource, cfg.CatalogTimeout, stderrLogger()).Load(cmd.Context())

		out := cmd.OutOrStdout()
		for _, s := range c.Subjects {
			fmt.Fprintf(out, "%-16s %2d questions\n", s.Title, len(s.Questions))
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <path|url>",
	Short: "Strictly load a catalog document and report problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := catalog.NewLoader(args[0], cfg.CatalogTimeout, nil).Fetch(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "valid: %d subjects, %d questions\n", len(c.Subjects), c.QuestionCount())
		return nil
	},
}

var catalogServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a catalog document over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.ServeAddr = addr
		}

		doc := catalog.FallbackDocument()
		if path, _ := cmd.Flags().GetString("file"); path != "" {
			doc, err = os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}
		}

		logger := stderrLogger()
		srv, err := catalog.NewServer(doc, logger)
		if err != nil {
			return err
		}

		httpSrv := &http.Server{
			Addr:              cfg.ServeAddr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Printf("serving %d subjects on %s%s", len(srv.Catalog().Subjects), cfg.ServeAddr, catalog.DocumentPath)
			errCh <- httpSrv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	},
}

func init() {
	catalogServeCmd.Flags().String("addr", "", "Listen address (overrides QUIZDECK_ADDR env var)")
	catalogServeCmd.Flags().String("file", "", "Catalog document to serve (default: embedded catalog)")

	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogServeCmd)
}
