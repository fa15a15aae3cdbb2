package main

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/refresh/cmd/refreshkit/internal/tui"
	"github.com/go-drift/refresh/pkg/refresh"
)

var (
	demoMode     string
	demoMaxPages int

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Try the header and footer in an interactive terminal list",
		Long: `Demo opens a list with a pull to refresh header and a load more footer.
Drag with the arrow keys, release with enter, and tap the footer with t.
Refreshes and page loads complete after demo.load_delay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				mode, err := refresh.ParseFooterMode(demoMode)
				if err != nil {
					return err
				}
				cfg.Footer.Mode = mode.String()
			}
			if cmd.Flags().Changed("max-pages") {
				cfg.Demo.MaxPages = demoMaxPages
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
)

func init() {
	demoCmd.Flags().StringVar(&demoMode, "mode", "", "Footer mode: scroll, tap or scroll_and_tap")
	demoCmd.Flags().IntVar(&demoMaxPages, "max-pages", 0, "Pages to load before the footer reports no more data (0 = unlimited)")
}
