// Package cli provides the itemsctl command-line interface to the items API.
package cli

import (
	"fmt"
	"os"
	"time"

	"itemdeck/internal/client"
	"itemdeck/internal/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Global flags
var (
	apiURL     string
	jsonOutput bool
	timeout    time.Duration
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "itemsctl",
	Short: "Browse and edit a remote item collection",
	Long: `itemsctl talks to the items API (GET/POST /api/items,
PUT/DELETE /api/items/{id}).

The API location comes from --api-url, then $API_URL, then
http://localhost:8080/api/items.

Examples:
  itemsctl list --search an --sort name
  itemsctl add Mango --description "Tropical stone fruit"
  itemsctl browse`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Items API base URL (default: $API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (default: $CLIENT_TIMEOUT_SEC seconds)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug output")
}

// newClient builds an API client from the flags, falling back to config.
func newClient() *client.Client {
	cfg := config.Load()
	url := apiURL
	if url == "" {
		url = cfg.Client.APIURL
	}
	t := timeout
	if t <= 0 {
		t = cfg.Client.Timeout
	}
	return client.New(url, t)
}
