package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	urlDevice  string
	urlChannel int
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Build admin API URLs for a configured device",
}

var urlSetCmd = &cobra.Command{
	Use:   "set key=value...",
	Short: "Build the URL that writes settings to a channel",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseAssignments(args)
		if err != nil {
			return err
		}
		u, err := adapter.SetParamsURL(urlDevice, urlChannel, params)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

var urlGetCmd = &cobra.Command{
	Use:   "get key...",
	Short: "Build the URL that reads settings from a channel",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := adapter.GetParamsURL(urlDevice, urlChannel, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	urlCmd.PersistentFlags().StringVarP(&urlDevice, "device", "d", "", "device name from the configuration file")
	urlCmd.PersistentFlags().IntVarP(&urlChannel, "channel", "n", 1, "channel number")
	_ = urlCmd.MarkPersistentFlagRequired("device")
	urlCmd.AddCommand(urlSetCmd, urlGetCmd)
	rootCmd.AddCommand(urlCmd)
}
