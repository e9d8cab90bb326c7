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

	httpAdapter "github.com/skroutz/turkish-stemmer/internal/adapters/http"
	"github.com/skroutz/turkish-stemmer/pkg/adapters/memory"
	"github.com/skroutz/turkish-stemmer/pkg/adapters/redis"
	"github.com/skroutz/turkish-stemmer/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stemming HTTP server",
	Long:  `Starts a JSON API over HTTP with an in-memory or Redis stem cache.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisTTL, _ := cmd.Flags().GetDuration("redis-ttl")

		logger := newLogger(cmd)

		stemmer, err := newStemmer(cmd)
		if err != nil {
			fmt.Printf("Error initializing stemmer: %v\n", err)
			os.Exit(1)
		}

		var cache ports.Cache = memory.NewCache()
		if redisAddr != "" {
			rc := redis.New(redisAddr, "", 0, redis.WithTTL(redisTTL))
			defer rc.Close()
			cache = rc
		}

		handler := httpAdapter.NewHandler(stemmer,
			httpAdapter.WithCache(cache),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting stemming server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Stemming server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for a shared stem cache (host:port)")
	serveCmd.Flags().Duration("redis-ttl", 0, "Expiration for cached stems (0 = no expiration)")
}
