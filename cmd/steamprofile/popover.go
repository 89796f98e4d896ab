package main

import (
	"fmt"
	"os"

	"github.com/buzkaaclicker/steamprofile/client"
	"github.com/buzkaaclicker/steamprofile/host"
	"github.com/buzkaaclicker/steamprofile/webapp"
	"github.com/spf13/cobra"
)

func popoverCommand() *cobra.Command {
	var viewerId string
	cmd := &cobra.Command{
		Use:   "popover USER_ID...",
		Short: "Open profile popovers against a running plugin server and print their HTML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			h := host.New()
			plugin := webapp.NewPlugin(client.New(cfg.PluginUrl, viewerId))
			if err := h.RegisterPlugin(webapp.PluginId, plugin); err != nil {
				return err
			}

			for _, userId := range args {
				popover := h.OpenPopover(cmd.Context(), host.User{Id: userId})
				if err := popover.Render(cmd.Context(), os.Stdout); err != nil {
					return fmt.Errorf("render popover of %s: %w", userId, err)
				}
				fmt.Fprintln(os.Stdout)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&viewerId, "viewer", "cli", "user id sent as the viewing user")
	return cmd
}
