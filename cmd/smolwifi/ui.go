package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/smolwifi/internal/nm"
	"github.com/user/smolwifi/internal/scan"
	"github.com/user/smolwifi/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive network list",
	Long: `Launch an interactive terminal view of nearby WiFi networks.

Networks are listed strongest-first with signal bars, band and security.
The connected network is highlighted. Press 'r' to rescan (ignored while
a scan is running), 'q' to quit. The list also refreshes itself
periodically; set auto_refresh to 0 in the config to disable that.`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	client, err := nm.Connect(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to reach NetworkManager: %w", err)
	}

	pipe := scan.NewPipeline(client, cfg)
	app := tui.NewApp(pipe, cfg)
	return app.Run()
}
