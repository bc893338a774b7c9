package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmsim/tmconv"
	"github.com/tmsim/tmconv/internal/adapters/httpapi"
	redisCache "github.com/tmsim/tmconv/internal/adapters/redis"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP conversion server",
	Long: `Starts the converter in server mode, exposing a JSON API over HTTP:
POST /convert, POST /graph, GET /healthz and GET /metrics. A Redis
conversion cache is attached when configured.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := createLogger(cmd)

		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		port, _ := cmd.Flags().GetString("port")
		if !cmd.Flags().Changed("port") && cfg.Server.Port != "" {
			port = cfg.Server.Port
		}

		conv := tmconv.New(tmconv.WithLogger(logger))

		opts := []httpapi.ServerOption{httpapi.WithLogger(logger)}
		if addr := cfg.Server.Redis.Addr; addr != "" {
			cache := redisCache.New(addr, cfg.Server.Redis.Password, cfg.Server.Redis.DB,
				redisCache.WithTTL(cfg.Server.Redis.TTL))
			defer cache.Close()
			opts = append(opts, httpapi.WithCache(cache))
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpapi.NewHandler(conv, opts...),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting tmconv server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Error killing server: %v\n", err)
				}
			}
			fmt.Println("tmconv server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
