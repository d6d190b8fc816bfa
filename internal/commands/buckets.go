package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ladder/internal/bucket"
)

func newBucketsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "buckets",
		Short: "List the bucket labels of each scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printBuckets(cmd.OutOrStdout())
			return nil
		},
	}
}

func printBuckets(w io.Writer) {
	fmt.Fprintf(w, "LCR:   %s\n", strings.Join(bucket.ShortTermLabels(), " | "))
	fmt.Fprintf(w, "NSFR:  %s\n", strings.Join(bucket.MediumTermLabels(), " | "))
	fmt.Fprintf(w, "IRRBB: %s\n", strings.Join(bucket.LadderLabels(), " | "))
}
