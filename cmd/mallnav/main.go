package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Ashwin-A21/mallnav/internal/config"
	"github.com/Ashwin-A21/mallnav/internal/server"
	"github.com/Ashwin-A21/mallnav/pkg/venue"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mallnav",
		Short: "Indoor wayfinding engine for multi-floor venues",
	}

	rootCmd.AddCommand(routeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(sceneCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func routeCmd() *cobra.Command {
	var from, to string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "route [project-path]",
		Short: "Plan a walking route between two named locations",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRoute(args[0], from, to, asJSON)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin location name")
	cmd.Flags().StringVar(&to, "to", "", "destination location name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full route as JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate venue data and the navigation graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func sceneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scene [project-path]",
		Short: "Assemble and print the renderer scene graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScene(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	cfg := config.Load()
	port := cfg.Port

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local API server for the map renderer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := cfg.ProjectDir
			if len(args) == 1 {
				dir = args[0]
			}
			v, err := venue.LoadProject(dir)
			if err != nil {
				return err
			}
			srv := server.New(v, port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", cfg.Port, "HTTP server port")
	return cmd
}
