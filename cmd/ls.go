package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	lsNamesOnly bool
	lsKeysOnly  bool
)

// lsCmd lists buckets, or the objects of one bucket.
var lsCmd = &cobra.Command{
	Use:   "ls [bucket]",
	Short: "List buckets, or objects in a bucket",
	Long: `List all buckets visible to the configured credentials, or the objects
in one bucket when a bucket name is given.

Examples:
  # List buckets with creation dates
  s3hive ls

  # List bucket names only
  s3hive ls --names-only

  # List objects in a bucket
  s3hive ls my-bucket

  # List object keys only
  s3hive ls my-bucket --keys-only`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, _, logg, err := newHive()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx := cmd.Context()

		if len(args) == 0 {
			if lsNamesOnly {
				names, err := h.BucketNames(ctx)
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Println(name)
				}
				return nil
			}

			buckets, err := h.ListBuckets(ctx)
			if err != nil {
				return err
			}
			for _, b := range buckets {
				fmt.Printf("%s  %s\n", b.CreatedAt.Format("2006-01-02 15:04:05"), b.Name)
			}
			return nil
		}

		bucket := args[0]
		if lsKeysOnly {
			keys, err := h.ObjectKeys(ctx, bucket)
			if err != nil {
				return err
			}
			for _, key := range keys {
				fmt.Println(key)
			}
			return nil
		}

		objects, err := h.ListObjects(ctx, bucket)
		if err != nil {
			return err
		}
		for _, obj := range objects {
			fmt.Printf("%s  %12d  %s\n", obj.LastModified.Format("2006-01-02 15:04:05"), obj.Size, obj.Key)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolVar(&lsNamesOnly, "names-only", false, "print bucket names without metadata")
	lsCmd.Flags().BoolVar(&lsKeysOnly, "keys-only", false, "print object keys without metadata")
}
