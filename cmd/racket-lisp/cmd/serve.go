package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/leinonen/racket-lisp/pkg/config"
	"github.com/leinonen/racket-lisp/pkg/logging"
	"github.com/leinonen/racket-lisp/pkg/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose evaluation over HTTP at POST /api/v1/evaluate",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		log := logging.New(logging.ParseLevel(cfg.Log.Level))
		handler := server.New(server.Config{JWTSecret: cfg.Server.JWTSecret})

		log.Info("listening", "addr", addr)
		return http.ListenAndServe(addr, handler)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", fmt.Sprintf("bind address (default %q or the config file's server.addr)", ":8080"))
	rootCmd.AddCommand(serveCmd)
}
