package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/user/smolwifi/internal/nm"
	"github.com/user/smolwifi/internal/scan"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan once and print nearby networks",
	Long: `Run one scan cycle and print the visible networks ranked by
signal strength. Use --json for machine-readable output.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false,
		"Print the scan result as JSON")
}

func runScan(cmd *cobra.Command, args []string) error {
	client, err := nm.Connect(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to reach NetworkManager: %w", err)
	}

	pipe := scan.NewPipeline(client, cfg)
	result, err := pipe.Run(cmd.Context())
	if err != nil {
		return err
	}

	if scanJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("46")).
		Bold(true)

	hiddenStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)

	fmt.Println(titleStyle.Render(fmt.Sprintf("WiFi networks on %s", result.Device)))

	if len(result.Networks) == 0 {
		fmt.Println(labelStyle.Render("No networks found"))
		return nil
	}

	for _, rec := range result.Networks {
		name := rec.DisplayName()
		nameStr := valueStyle.Render(name)
		if rec.Hidden() {
			nameStr = hiddenStyle.Render(name)
		}
		if rec.Active {
			nameStr = activeStyle.Render(name + " *")
		}

		fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%3d%%", rec.SignalPercent)), nameStr)
		fmt.Printf("       %s %s  %s %s  %s %s\n",
			labelStyle.Render("band:"), valueStyle.Render(rec.Band()),
			labelStyle.Render("security:"), valueStyle.Render(string(rec.Security)),
			labelStyle.Render("bssid:"), valueStyle.Render(rec.BSSID))
	}

	fmt.Println()
	summary := result.Summary()
	if result.Stale {
		summary += " (scan did not finish in time; results may be stale)"
	}
	if result.Skipped > 0 {
		summary += fmt.Sprintf(" (%d access points unreadable)", result.Skipped)
	}
	fmt.Println(labelStyle.Render(summary))

	return nil
}
