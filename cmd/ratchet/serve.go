package main

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/ratchet/internal/logging"
	httpadapter "github.com/aretw0/ratchet/pkg/adapters/http"
	yamladapter "github.com/aretw0/ratchet/pkg/adapters/yaml"
	"github.com/aretw0/ratchet/pkg/domain"
)

// serveCmd runs the HTTP inspection server over one or more machine
// definitions.
var serveCmd = &cobra.Command{
	Use:   "serve <machine.yaml> [more.yaml ...]",
	Short: "Serve machine inspection over HTTP",
	Long: `Starts an HTTP server exposing the given machine definitions: graph
JSON, Mermaid/PlantUML markup, validation reports, and Prometheus
metrics on /metrics.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		debug, _ := cmd.Root().PersistentFlags().GetBool("debug")
		logger := logging.New(debug)

		defs := make(map[string]*domain.Definition, len(args))
		for _, path := range args {
			def, err := yamladapter.Load(path, nil)
			if err != nil {
				return err
			}
			name := def.Name
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			if _, dup := defs[name]; dup {
				return fmt.Errorf("duplicate machine name %q", name)
			}
			defs[name] = def
		}

		handler := httpadapter.NewHandler(defs, httpadapter.WithLogger(logger))
		logger.Info("serving machine inspection", "addr", addr, "machines", len(defs))
		return http.ListenAndServe(addr, handler)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
