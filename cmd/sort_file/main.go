// sort_file mengurutkan baris-baris sebuah file teks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridloal/go-stock-manager/internal/sortfile"
)

var (
	reverse bool
	output  string
)

var rootCmd = &cobra.Command{
	Use:          "sort_file <file>",
	Short:        "Sort or reverse lines in a file",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := sortfile.Run(sortfile.Options{
			Input:   args[0],
			Output:  output,
			Reverse: reverse,
		})
		if err != nil {
			fmt.Printf("Error: %v.\n", err)
			return nil
		}
		if output == "" {
			fmt.Print(out)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Sort lines in reverse")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Write values to an output file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
