package railenv

import (
	"fmt"
	"io"
	"os"

	"github.com/railwayapp/railenv/environment"
	"github.com/railwayapp/railenv/logging"
	"github.com/railwayapp/railenv/postgres"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var connectCmd = &cobra.Command{
	Use:   "connect <connection-string>",
	Short: "Show how a PostgreSQL connection string is adjusted for this environment",
	Long: `Connect runs a PostgreSQL connection string through the same rules an
application would use. On a Railway private network certificate verification
is turned off; elsewhere sslmode=disable is appended unless --force-ssl is set
or the string already carries an sslmode. Passwords are redacted in the output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := executeConnect(cmd.OutOrStdout(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Connect failed: %v\n", err)
			os.Exit(1)
		}
	},
}

type connectReport struct {
	ConnectionString string             `json:"connectionString" yaml:"connectionString" toml:"connectionString"`
	SSL              postgres.SSLConfig `json:"ssl" yaml:"ssl" toml:"ssl"`
	Modified         bool               `json:"modified" yaml:"modified" toml:"modified"`
	Target           connectTarget      `json:"target" yaml:"target" toml:"target"`
}

type connectTarget struct {
	Host     string `json:"host" yaml:"host" toml:"host"`
	Port     uint16 `json:"port" yaml:"port" toml:"port"`
	Database string `json:"database" yaml:"database" toml:"database"`
	TLS      bool   `json:"tls" yaml:"tls" toml:"tls"`
}

func executeConnect(w io.Writer, connectionString string) error {
	env, err := loadEnvironment(viper.GetStringSlice("env-file"))
	if err != nil {
		return err
	}

	opts := postgres.Options{
		RejectUnauthorized: viper.GetBool("reject-unauthorized"),
		ForceSSL:           viper.GetBool("force-ssl"),
		DisableLogging:     viper.GetBool("quiet"),
	}
	if caFile := viper.GetString("ca-file"); caFile != "" {
		ca, err := os.ReadFile(caFile)
		if err != nil {
			return fmt.Errorf("failed to read CA file: %w", err)
		}
		opts.CA = string(ca)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	return runConnect(w, env, connectionString, opts, logger, viper.GetString("output"))
}

func runConnect(w io.Writer, env environment.Env, connectionString string, opts postgres.Options, logger logging.Logger, format string) error {
	config, err := postgres.Configure(env, connectionString, opts, logger)
	if err != nil {
		return err
	}

	pgxConfig, err := config.PgxConfig()
	if err != nil {
		return err
	}

	report := connectReport{
		ConnectionString: config.Redacted(),
		SSL:              config.SSL,
		Modified:         config.Modified,
		Target: connectTarget{
			Host:     pgxConfig.Host,
			Port:     pgxConfig.Port,
			Database: pgxConfig.Database,
			TLS:      pgxConfig.TLSConfig != nil,
		},
	}
	return render(w, format, report)
}

func init() {
	connectCmd.Flags().Bool("reject-unauthorized", false, "verify server certificates")
	connectCmd.Flags().Bool("force-ssl", false, "never append sslmode=disable")
	connectCmd.Flags().String("ca-file", "", "PEM encoded CA bundle")
	connectCmd.Flags().Bool("quiet", false, "do not log configuration changes")

	for _, name := range []string{"reject-unauthorized", "force-ssl", "ca-file", "quiet"} {
		cobra.CheckErr(viper.BindPFlag(name, connectCmd.Flags().Lookup(name)))
	}

	rootCmd.AddCommand(connectCmd)
}
