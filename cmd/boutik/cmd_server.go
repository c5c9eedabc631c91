package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/boutiklabs/boutik/config"
	"github.com/boutiklabs/boutik/internal/server"
)

// boutik serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlags()
		return server.Start()
	},
}

// boutik route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := server.NewRouter()
		if err != nil {
			return err
		}

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

var (
	flagPort     string
	flagDataFile string
)

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "listen port (overrides APP_PORT)")
	serveCmd.Flags().StringVar(&flagDataFile, "data-file", "", "product file path (overrides DATA_FILE)")
}

// applyFlags pushes CLI flag values into the config layer before boot.
func applyFlags() {
	if flagPort != "" {
		config.Set("APP_PORT", flagPort)
	}
	if flagDataFile != "" {
		config.Set("DATA_FILE", flagDataFile)
	}
}
