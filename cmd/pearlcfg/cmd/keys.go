package cmd

import (
	"fmt"

	"pearlcfg/internal/keys"

	"github.com/spf13/cobra"
)

var (
	keysGroup       string
	keysPublishType string
	keysListGroups  bool
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List recognized configuration keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		if keysListGroups {
			for _, g := range keys.Groups() {
				fmt.Fprintf(out, "%s (%d)\n", g.Name, len(g.Keys))
			}
			return nil
		}

		var list []string
		switch {
		case keysGroup != "":
			ks, ok := keys.GroupKeys(keysGroup)
			if !ok {
				return fmt.Errorf("unknown group %q", keysGroup)
			}
			list = ks
		case keysPublishType != "":
			list = keys.ForPublishType(keysPublishType)
			if list == nil {
				return fmt.Errorf("unknown publish type %q", keysPublishType)
			}
		default:
			list = keys.All()
		}

		for _, k := range list {
			fmt.Fprintln(out, k)
		}
		return nil
	},
}

func init() {
	keysCmd.Flags().StringVarP(&keysGroup, "group", "g", "", "only list keys of this settings group")
	keysCmd.Flags().StringVarP(&keysPublishType, "publish-type", "p", "", "only list destination keys of this publish_type")
	keysCmd.Flags().BoolVar(&keysListGroups, "groups", false, "list settings groups instead of keys")
	keysCmd.MarkFlagsMutuallyExclusive("group", "publish-type", "groups")
	rootCmd.AddCommand(keysCmd)
}
