package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// parseEnv overlays PORTAL_* environment variables onto the config.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("PORTAL_ADDR"); ok {
		config.Addr = v
	}
	if v, ok := os.LookupEnv("PORTAL_DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("PORTAL_SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("PORTAL_TOKEN_EXPIRATION"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenExpiration = d
		}
	}
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   SQLite DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, hours
//	-c string   path to a JSON config file (consumed by parseJSON)
func parseFlags(config *Config) error {
	fs := flag.NewFlagSet("portal-server", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT signing secret")
	tokenExpiration := fs.Int("t", int(config.TokenExpiration.Hours()), "token validity (in hours)")
	fs.String("c", "", "path to JSON config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	config.TokenExpiration = time.Duration(*tokenExpiration) * time.Hour
	return nil
}

// jsonConfigPath returns the value of the -c flag without consuming the
// remaining flags, so parseJSON can run before parseFlags.
func jsonConfigPath() string {
	args := os.Args[1:]
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--c":
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		case strings.HasPrefix(arg, "--c="):
			return strings.TrimPrefix(arg, "--c=")
		}
	}
	return os.Getenv("PORTAL_CONFIG")
}
