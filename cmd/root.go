// Package cmd implements the ironseal command-line interface: a thin cobra
// wrapper around internal/sealcore that reads its password/rotation-table
// configuration through viper and logs through hermannm.dev/devlog.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"

	"ironseal/internal/sealcore"
)

var (
	cfgFile      string
	rotationFile string
	auditFile    string
	debug        bool
	logLevel     slog.LevelVar
)

var rootCmd = &cobra.Command{
	Use:   "ironseal",
	Short: "Seal and unseal Fe26.1 password-authenticated encrypted tokens",
	Long: `ironseal seals an opaque payload into a self-contained, password-authenticated
encrypted token (the Fe26.1 wire format) and unseals it back, with optional
password rotation and an append-only audit trail of every operation.`,
}

// Execute runs the root command; it is called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stderr, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.ironseal.yaml)")
	rootCmd.PersistentFlags().StringVar(&rotationFile, "rotation-table", "", "path to a YAML password-rotation table")
	rootCmd.PersistentFlags().StringVar(&auditFile, "audit-log", "", "path to append a JSON-lines audit trail (disabled if empty)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level logging")
	rootCmd.PersistentFlags().Int("enc-iterations", 0, "PBKDF2 iteration count for the encryption key (0 = wire default)")
	rootCmd.PersistentFlags().Int("int-iterations", 0, "PBKDF2 iteration count for the integrity key (0 = wire default)")

	bindFlag(rootCmd, "rotation-table")
	bindFlag(rootCmd, "audit-log")
	bindFlag(rootCmd, "enc-iterations")
	bindFlag(rootCmd, "int-iterations")

	cobra.OnInitialize(func() {
		if debug {
			logLevel.Set(slog.LevelDebug)
		}
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.SetConfigName(".ironseal")
			viper.SetConfigType("yaml")
			viper.AddConfigPath("$HOME")
			viper.AddConfigPath(".")
		}
		viper.SetEnvPrefix("IRONSEAL")
		viper.AutomaticEnv()
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				slog.Warn("failed to read config file", "error", err)
			}
		}
	})
}

func bindFlag(cmd *cobra.Command, name string) {
	if err := viper.BindPFlag(name, cmd.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
}

// buildContext returns a sealcore.Context seeded with the wire-default
// option profiles, with iteration counts overridden from config/flags when
// an operator has stepped away from the (intentionally weak) wire defaults
// for a non-interoperable deployment.
func buildContext() *sealcore.Context {
	ctx := sealcore.NewContext()
	if n := viper.GetInt("enc-iterations"); n > 0 {
		ctx.EncryptionOptions.Iterations = n
	}
	if n := viper.GetInt("int-iterations"); n > 0 {
		ctx.IntegrityOptions.Iterations = n
	}
	return ctx
}
