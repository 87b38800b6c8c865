package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/pkg/logger"
)

var (
	clearData bool
)

var rootCmd = &cobra.Command{
	Use:   "hrms-client",
	Short: "HRMS client",
	Long:  `Command-line client for the HRMS backend: attendance, leaves, on-duty and profile.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	// environment-only config for containers and CI
	if os.Getenv("APP_ENV") == "production" || os.Getenv("DOCKER_ENV") == "true" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("HRMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// no config file is fine for the CLI, fall back to defaults
		var notFound viper.ConfigFileNotFoundError
		if ok := isConfigNotFound(err, &notFound); ok {
			return internal.LoadConfigFromEnv(), nil
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Session.Path == "" {
		cfg.Session.Path = internal.DefaultSessionPath()
	}

	return &cfg, nil
}

func isConfigNotFound(err error, target *viper.ConfigFileNotFoundError) bool {
	if e, ok := err.(viper.ConfigFileNotFoundError); ok {
		*target = e
		return true
	}
	return false
}

func setupLogging(cfg *internal.Config) {
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")

	rootCmd.AddCommand(stubServerCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(attendanceCmd)
	rootCmd.AddCommand(leaveCmd)
	rootCmd.AddCommand(odCmd)
	rootCmd.AddCommand(cclCmd)
	rootCmd.AddCommand(holidaysCmd)
}
