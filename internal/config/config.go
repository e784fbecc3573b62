package config

import "github.com/spf13/viper"

// Config holds the application configuration
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	PostgresConn  string `mapstructure:"POSTGRES_CONN"`
	MigrationURL  string `mapstructure:"MIGRATION_URL"`
	GinMode       string `mapstructure:"GIN_MODE"`
}

// LoadConfig loads the configuration from an env file in the given path.
// Missing file is not fatal; defaults and real environment variables apply.
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("MIGRATION_URL", "file://migrations")

	if err = viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return
		}
		err = nil
	}
	err = viper.Unmarshal(&cfg)
	return
}
