package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EnvPrefix is prepended to every environment variable read by the service,
// e.g. WALLET_ECHO_LISTEN_ADDRESS.
const EnvPrefix = "WALLET"

type EchoServer struct {
	Debug                     bool   `mapstructure:"debug"`
	ListenAddress             string `mapstructure:"listen_address"`
	EnableRecoverMiddleware   bool   `mapstructure:"enable_recover_middleware"`
	EnableRequestIDMiddleware bool   `mapstructure:"enable_request_id_middleware"`
}

type LoggerServer struct {
	Level              zerolog.Level `mapstructure:"-"`
	LevelName          string        `mapstructure:"level"`
	RequestLevel       zerolog.Level `mapstructure:"-"`
	RequestLevelName   string        `mapstructure:"request_level"`
	PrettyPrintConsole bool          `mapstructure:"pretty_print_console"`
}

// RPCServer holds the comma separated RPC URLs for each known network.
type RPCServer struct {
	Sonic       string `mapstructure:"sonic"`
	BaseSepolia string `mapstructure:"base_sepolia"`
	Ethereum    string `mapstructure:"ethereum"`
}

type WalletServer struct {
	Network            string        `mapstructure:"network"`
	AccountAddress     string        `mapstructure:"account_address"`
	KeystorePath       string        `mapstructure:"keystore_path"`
	KeystorePassphrase string        `mapstructure:"keystore_passphrase"`
	TokenListPath      string        `mapstructure:"token_list_path"`
	BalanceTimeout     time.Duration `mapstructure:"balance_timeout"`
	GasTimeout         time.Duration `mapstructure:"gas_timeout"`
	CopyResetAfter     time.Duration `mapstructure:"copy_reset_after"`
	// SessionIdleTimeout 发送流程在 HTTP API 中无访问后的保留时间，<= 0 不清理
	SessionIdleTimeout time.Duration `mapstructure:"session_idle_timeout"`
	// EnableSigning 关闭时 submit 会被拒绝（只读模式）
	EnableSigning bool `mapstructure:"enable_signing"`
}

type I18nServer struct {
	DefaultLanguage string `mapstructure:"default_language"`
}

type Server struct {
	Echo   EchoServer   `mapstructure:"echo"`
	Logger LoggerServer `mapstructure:"logger"`
	RPC    RPCServer    `mapstructure:"rpc"`
	Wallet WalletServer `mapstructure:"wallet"`
	I18n   I18nServer   `mapstructure:"i18n"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("echo.debug", false)
	v.SetDefault("echo.listen_address", ":8080")
	v.SetDefault("echo.enable_recover_middleware", true)
	v.SetDefault("echo.enable_request_id_middleware", true)

	v.SetDefault("logger.level", zerolog.InfoLevel.String())
	v.SetDefault("logger.request_level", zerolog.DebugLevel.String())
	v.SetDefault("logger.pretty_print_console", false)

	v.SetDefault("rpc.sonic", "https://rpc.soniclabs.com")
	v.SetDefault("rpc.base_sepolia", "https://sepolia.base.org")
	v.SetDefault("rpc.ethereum", "")

	v.SetDefault("wallet.network", "sonic")
	v.SetDefault("wallet.account_address", "")
	v.SetDefault("wallet.keystore_path", "")
	v.SetDefault("wallet.keystore_passphrase", "")
	v.SetDefault("wallet.token_list_path", "")
	v.SetDefault("wallet.balance_timeout", 10*time.Second)
	v.SetDefault("wallet.gas_timeout", 10*time.Second)
	v.SetDefault("wallet.copy_reset_after", 2*time.Second)
	v.SetDefault("wallet.session_idle_timeout", 15*time.Minute)
	v.SetDefault("wallet.enable_signing", true)

	v.SetDefault("i18n.default_language", "en")
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// An optional .env file in the working directory is loaded first; variables
// already set in the process environment take precedence.
func DefaultServiceConfigFromEnv() Server {
	if err := gotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var config Server
	if err := v.Unmarshal(&config); err != nil {
		log.Panic().Err(err).Msg("Failed to decode server config")
	}

	config.Logger.Level = parseLevel(config.Logger.LevelName, zerolog.InfoLevel)
	config.Logger.RequestLevel = parseLevel(config.Logger.RequestLevelName, zerolog.DebugLevel)

	return config
}

func parseLevel(name string, fallback zerolog.Level) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return fallback
	}
	return level
}
