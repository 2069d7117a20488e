package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rmCmd deletes an object.
var rmCmd = &cobra.Command{
	Use:   "rm <bucket> <key>",
	Short: "Delete an object from a bucket",
	Long: `Delete an object. On a versioning-enabled bucket the service creates a
delete marker instead of removing the object; the marker's version ID is
printed when that happens.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, _, logg, err := newHive()
		if err != nil {
			return err
		}
		defer logg.Sync()

		bucket, key := args[0], args[1]
		res, err := h.Delete(cmd.Context(), bucket, key)
		if err != nil {
			return err
		}

		if res.DeleteMarker {
			fmt.Printf("deleted %s/%s (delete marker %s)\n", bucket, key, res.DeleteMarkerVersionID)
		} else {
			fmt.Printf("deleted %s/%s\n", bucket, key)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rmCmd)
}
