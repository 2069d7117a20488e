package cmd

import (
	"fmt"

	"s3hive/core/hive"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var getDir string

// getCmd downloads an object.
var getCmd = &cobra.Command{
	Use:   "get <bucket> <key>",
	Short: "Download an object to a local directory",
	Long: `Download an object, showing transfer progress. The destination
directory is created if it does not exist, and the object lands there under
the key's basename.

The default directory comes from DOWNLOAD_DIR (falling back to the current
directory); --dir overrides it.

Examples:
  # Download into the default directory
  s3hive get my-bucket a.yml

  # Download into /tmp/out, creating it if needed
  s3hive get my-bucket a.yml --dir /tmp/out`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, cfg, logg, err := newHive()
		if err != nil {
			return err
		}
		defer logg.Sync()

		bucket, key := args[0], args[1]
		dir := getDir
		if dir == "" {
			dir = cfg.Download.Dir
		}

		bar := progressbar.DefaultBytes(-1, fmt.Sprintf("Downloading %s/%s", bucket, key))
		local, err := h.Download(cmd.Context(), bucket, key, hive.DownloadOptions{
			Dir:      dir,
			Progress: barProgress(bar),
		})
		if err != nil {
			return err
		}
		_ = bar.Finish()
		fmt.Println()

		logg.Info("download complete",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.String("local", local),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVar(&getDir, "dir", "", "destination directory (defaults to DOWNLOAD_DIR)")
}
