package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mbACL string

// mbCmd creates a bucket.
var mbCmd = &cobra.Command{
	Use:   "mb <bucket>",
	Short: "Create a bucket",
	Long: `Create a bucket in the configured region.

Examples:
  # Private bucket (default)
  s3hive mb my-bucket

  # Publicly readable bucket
  s3hive mb my-bucket --acl public-read`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, _, logg, err := newHive()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if err := h.CreateBucket(cmd.Context(), args[0], mbACL); err != nil {
			return err
		}
		fmt.Printf("created bucket %s\n", args[0])
		return nil
	},
}

// rbCmd deletes a bucket.
var rbCmd = &cobra.Command{
	Use:   "rb <bucket>",
	Short: "Delete a bucket",
	Long:  `Delete a bucket. The service rejects non-empty buckets.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, _, logg, err := newHive()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if err := h.DeleteBucket(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted bucket %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mbCmd)
	RootCmd.AddCommand(rbCmd)
	mbCmd.Flags().StringVar(&mbACL, "acl", "private", "canned ACL: private, public-read, public-read-write")
}
