package railenv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/railwayapp/railenv/environment"
	"github.com/railwayapp/railenv/internal/export"
	"github.com/railwayapp/railenv/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "railenv",
	Short: "Inspect Railway private networking settings from the environment",
	Long: `railenv reads the database and cache URLs Railway injects into a service
and reports whether they point at the private network (*.railway.internal).
It can also show how a PostgreSQL connection string would be adjusted:
1. Detect - Is this process running on a Railway private network?
2. Scan - Which variables and hosts reference it?
3. Connect - Which sslmode and certificate settings should a client use?`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.railenv.yaml)")
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "dotenv files layered over the process environment")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format ("+strings.Join(export.Formats, ", ")+")")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	for _, name := range []string{"env-file", "output", "log-level", "log-format"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".railenv")
	}

	viper.SetEnvPrefix("RAILENV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadEnvironment layers the given dotenv files over the process environment.
func loadEnvironment(files []string) (environment.Env, error) {
	if len(files) == 0 {
		return environment.OS(), nil
	}

	dotenv, err := environment.LoadDotEnv(files...)
	if err != nil {
		return nil, err
	}
	return environment.Layered{dotenv, environment.OS()}, nil
}

func newLogger() (logging.Logger, error) {
	logger, err := logging.New(viper.GetString("log-level"), viper.GetString("log-format"))
	if err != nil {
		return nil, err
	}
	return logging.NewLogrus(logger), nil
}

func render(w io.Writer, format string, v any) error {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}

	output, err := exporter.Export(v)
	if err != nil {
		return fmt.Errorf("%s export failed: %w", exporter.Name(), err)
	}

	_, err = fmt.Fprintln(w, strings.TrimRight(string(output), "\n"))
	return err
}
