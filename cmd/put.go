package cmd

import (
	"fmt"
	"path/filepath"

	"s3hive/core/hive"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	putKey         string
	putContentType string
)

// putCmd uploads a local file.
var putCmd = &cobra.Command{
	Use:   "put <bucket> <file>",
	Short: "Upload a local file to a bucket",
	Long: `Upload a local file to a bucket, showing transfer progress.

The object key defaults to the file's basename.

Examples:
  # Store a.yml under key "a.yml"
  s3hive put my-bucket a.yml

  # Store under an explicit key
  s3hive put my-bucket a.yml --key configs/a.yml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, _, logg, err := newHive()
		if err != nil {
			return err
		}
		defer logg.Sync()

		bucket, file := args[0], args[1]
		key := putKey
		if key == "" {
			key = filepath.Base(file)
		}

		bar := progressbar.DefaultBytes(-1, fmt.Sprintf("Uploading %s to %s", file, bucket))
		err = h.Upload(cmd.Context(), bucket, file, hive.UploadOptions{
			Key:         putKey,
			ContentType: putContentType,
			Progress:    barProgress(bar),
		})
		if err != nil {
			return err
		}
		_ = bar.Finish()
		fmt.Println()

		logg.Info("upload complete",
			zap.String("bucket", bucket),
			zap.String("key", key),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(putCmd)
	putCmd.Flags().StringVar(&putKey, "key", "", "object key (defaults to the file basename)")
	putCmd.Flags().StringVar(&putContentType, "content-type", "", "content type to store with the object")
}
