package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/files-billing-cli/internal/adapters/wallet/ethrpc"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".files-billing"
	configFileName = "config.toml"
	envPrefix      = "FB"

	defaultAPIBaseURL = "https://api.files.chainsafe.io/api/v1"
)

type config struct {
	API     apiConfig     `mapstructure:"api"`
	Stripe  stripeConfig  `mapstructure:"stripe"`
	Wallet  walletConfig  `mapstructure:"wallet"`
	Log     logConfig     `mapstructure:"log"`
	Secrets secretsConfig `mapstructure:"secrets"`
}

type apiConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type stripeConfig struct {
	PublishableKey string `mapstructure:"publishable_key"`
	APIURL         string `mapstructure:"api_url" validate:"omitempty,url"`
}

type walletConfig struct {
	RPCURL       string               `mapstructure:"rpc_url" validate:"omitempty,url"`
	NetworkID    uint64               `mapstructure:"network_id" validate:"gt=0"`
	PollInterval time.Duration        `mapstructure:"poll_interval" validate:"gte=0"`
	Tokens       []ethrpc.TokenConfig `mapstructure:"tokens" validate:"dive"`
}

type logConfig struct {
	Level string `mapstructure:"level"`
}

type secretsConfig struct {
	Backend    string `mapstructure:"backend" validate:"oneof=auto file pass"`
	Dir        string `mapstructure:"dir"`
	PassPrefix string `mapstructure:"pass_prefix"`
}

// loadConfig reads ~/.files-billing/config.toml, an optional .env in the
// working directory and FB_* environment variables, in increasing
// precedence. The returned viper instance also carries the state file
// paths for the toml repositories.
func loadConfig(homeDir string) (*viper.Viper, config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(homeDir, configDirName, configFileName))
	v.SetConfigType("toml")

	v.SetDefault("api.base_url", defaultAPIBaseURL)
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("stripe.publishable_key", "")
	v.SetDefault("stripe.api_url", "")
	v.SetDefault("wallet.rpc_url", "")
	v.SetDefault("wallet.network_id", 1)
	v.SetDefault("wallet.poll_interval", 2*time.Second)
	v.SetDefault("log.level", "warn")
	v.SetDefault("secrets.backend", "auto")
	v.SetDefault("secrets.dir", filepath.Join(homeDir, configDirName, "secrets"))
	v.SetDefault("secrets.pass_prefix", "files-billing")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"api.base_url":           "FB_API_URL",
		"stripe.publishable_key": "FB_STRIPE_KEY",
		"wallet.rpc_url":         "FB_WALLET_RPC",
		"log.level":              "FB_LOG_LEVEL",
		"secrets.backend":        "FB_SECRETS_BACKEND",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
		return nil, config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.API.BaseURL = strings.TrimSpace(cfg.API.BaseURL)
	cfg.Secrets.Backend = strings.ToLower(strings.TrimSpace(cfg.Secrets.Backend))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, config{}, fmt.Errorf("invalid config: %w", err)
	}

	return v, cfg, nil
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
