package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		bindFlag(KeyUpToken, root, "up-token")
		bindFlag(KeyUpBaseURL, root, "up-base-url")
		bindFlag(KeyUpPageSize, root, "up-page-size")
		bindFlag(KeyLogLevel, root, "log-level")
		bindFlag(KeyTransport, root, "transport")
	}
	setDefaults()
}

func bindFlag(key string, root *cobra.Command, name string) {
	if f := root.PersistentFlags().Lookup(name); f != nil {
		_ = viper.BindPFlag(key, f)
	}
}

func setDefaults() {
	viper.SetDefault(KeyUpBaseURL, "https://api.up.com.au/api/v1")
	viper.SetDefault(KeyUpPageSize, 100)
	viper.SetDefault(KeyHTTPTimeout, 30*time.Second)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
}

func UpToken() string            { return viper.GetString(KeyUpToken) }
func UpBaseURL() string          { return viper.GetString(KeyUpBaseURL) }
func UpPageSize() int            { return viper.GetInt(KeyUpPageSize) }
func HTTPTimeout() time.Duration { return viper.GetDuration(KeyHTTPTimeout) }
func LogLevel() string           { return viper.GetString(KeyLogLevel) }
func Transport() string          { return viper.GetString(KeyTransport) }
