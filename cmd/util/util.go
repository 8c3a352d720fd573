package util

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ucall-rpc/ucall-go/rpc/client"
	"github.com/ucall-rpc/ucall-go/rpc/common"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupClientFlags adds the common connection flags to a command
func SetupClientFlags(cmd *cobra.Command) {
	key := "host"
	cmd.PersistentFlags().String(key, client.DefaultHost, WrapString("The address of the server. Prefix with unix:// for a unix-domain socket path"))

	key = "port"
	cmd.PersistentFlags().Int(key, client.DefaultPort, WrapString("The port of the server (ignored for unix-domain endpoints)"))

	key = "framing"
	cmd.PersistentFlags().String(key, "http", WrapString("Wire framing mode (http, raw)"))

	key = "user-agent"
	cmd.PersistentFlags().String(key, client.DefaultUserAgent, WrapString("User-Agent header value for http framing"))

	key = "timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("Per-call socket deadline in seconds, 0 to block indefinitely"))

	key = "tls"
	cmd.PersistentFlags().Bool(key, false, WrapString("Wrap the connection in TLS"))

	key = "tls-ca-cert"
	cmd.PersistentFlags().String(key, "", WrapString("PEM bundle used as the trust root instead of the system pool"))

	key = "tls-insecure"
	cmd.PersistentFlags().Bool(key, false, WrapString("Accept self-signed certificates (disables hostname verification and certificate validation)"))

	key = "tls-session-resumption"
	cmd.PersistentFlags().Bool(key, true, WrapString("Reuse TLS session state across reconnects to skip full handshakes"))

	key = "socket-write-buffer"
	cmd.PersistentFlags().Int(key, 0, WrapString("Socket write buffer size in KB (0 keeps the kernel default)"))

	key = "socket-read-buffer"
	cmd.PersistentFlags().Int(key, 0, WrapString("Socket read buffer size in KB (0 keeps the kernel default)"))

	key = "tcp-nodelay"
	cmd.PersistentFlags().Bool(key, true, WrapString("Whether to enable TCP_NODELAY"))

	key = "tcp-keepalive"
	cmd.PersistentFlags().Int(key, 0, WrapString("TCP keepalive interval in seconds (0 disables)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("Log level (debug, info, warn, error)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("ucall")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() (*common.ClientConfig, error) {
	framing := common.FramingMode(viper.GetString("framing"))
	if framing != common.FramingHTTP && framing != common.FramingRaw {
		return nil, fmt.Errorf("invalid framing mode %q (must be http or raw)", viper.GetString("framing"))
	}

	conf := &common.ClientConfig{
		Host:          viper.GetString("host"),
		Port:          viper.GetInt("port"),
		Framing:       framing,
		UserAgent:     viper.GetString("user-agent"),
		TimeoutSecond: viper.GetInt("timeout"),
		Socket: common.SocketConf{
			WriteBufferSize: viper.GetInt("socket-write-buffer") * 1024,
			ReadBufferSize:  viper.GetInt("socket-read-buffer") * 1024,
			TCPNoDelay:      viper.GetBool("tcp-nodelay"),
			TCPKeepAliveSec: viper.GetInt("tcp-keepalive"),
		},
		TLS: common.TLSConf{
			Enabled:           viper.GetBool("tls"),
			CACertFile:        viper.GetString("tls-ca-cert"),
			AllowSelfSigned:   viper.GetBool("tls-insecure"),
			SessionResumption: viper.GetBool("tls-session-resumption"),
		},
		LogLevel: viper.GetString("log-level"),
	}

	if conf.IsUnix() && conf.TLS.Enabled {
		return nil, fmt.Errorf("tls is not supported on unix-domain endpoints")
	}

	return conf, nil
}

// NewClient builds a client from the viper configuration
func NewClient() (*client.Client, error) {
	conf, err := GetClientConfig()
	if err != nil {
		return nil, err
	}

	if err := common.InitLoggers(*conf); err != nil {
		return nil, err
	}

	return client.New(*conf)
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
