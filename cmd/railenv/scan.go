package railenv

import (
	"fmt"
	"io"
	"os"

	"github.com/railwayapp/railenv/environment"
	"github.com/railwayapp/railenv/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Report which variables and hosts reference the Railway private network",
	Long: `Scan checks every known database and cache URL variable, in order, and
prints the aggregated settings: whether the private network was detected, the
matching variables and the distinct private hosts they point at.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := loadEnvironment(viper.GetStringSlice("env-file"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
			os.Exit(1)
		}

		if err := runScan(cmd.OutOrStdout(), env, viper.GetString("output")); err != nil {
			fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func runScan(w io.Writer, env environment.Env, format string) error {
	return render(w, format, platform.Aggregate(env))
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
