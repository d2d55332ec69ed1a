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

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print whether any known variable points at the Railway private network",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := loadEnvironment(viper.GetStringSlice("env-file"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
			os.Exit(1)
		}

		if err := runDetect(cmd.OutOrStdout(), env); err != nil {
			fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func runDetect(w io.Writer, env environment.Env) error {
	_, err := fmt.Fprintln(w, platform.Detect(env))
	return err
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
