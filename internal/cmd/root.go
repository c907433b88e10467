package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"epicview/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "epicview",
	Short: "Dashboard for an orchestrator's epic/feature/task work queue",
	Long: `Epicview renders the work queue snapshot an orchestrator maintains on
disk as an interactive tree of epics, features, and tasks, with rolled-up
progress and live reloads when the snapshot file changes.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/epicview/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().StringP("snapshot", "s", "", "path to the work queue snapshot file")
	_ = viper.BindPFlag("data.snapshot_path", rootCmd.PersistentFlags().Lookup("snapshot"))

	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/epicview")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("EPICVIEW")
	// Replace dots with underscores for nested keys in env vars
	// e.g., EPICVIEW_DATA_SNAPSHOT_PATH for data.snapshot_path
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
