package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var presignExpires int

// presignCmd generates a time-limited URL for an object.
var presignCmd = &cobra.Command{
	Use:   "presign <bucket> <key>",
	Short: "Generate a presigned GET URL for an object",
	Long: `Generate a time-limited URL granting access to an object without
credentials.

Examples:
  # Valid for one hour (default)
  s3hive presign my-bucket a.yml

  # Valid for five minutes
  s3hive presign my-bucket a.yml --expires 300`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, _, logg, err := newHive()
		if err != nil {
			return err
		}
		defer logg.Sync()

		url, err := h.PresignedURL(cmd.Context(), args[0], args[1], time.Duration(presignExpires)*time.Second)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(presignCmd)
	presignCmd.Flags().IntVar(&presignExpires, "expires", 3600, "URL validity in seconds")
}
