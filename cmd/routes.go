package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"marstack/feature/device"

	"github.com/spf13/cobra"
)

// routesCmd prints the emulated endpoints.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the emulated device endpoints",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tCONTENT TYPE\tSUMMARY")
		for _, r := range device.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Method, r.Path, r.ContentType, r.Summary)
		}
		_ = w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(routesCmd)
}
