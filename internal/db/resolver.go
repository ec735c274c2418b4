package db

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vvka-141/vendorsum/internal/config"
	"github.com/vvka-141/vendorsum/pkg/vendorsum"
)

// ConnectionStringEnvVar holds a full connection string. DATABASE_URL is read
// when it is unset.
const ConnectionStringEnvVar = "VENDORSUM_CONNECTION_STRING"

// GranularConnFlags are the libpq-style -h, -p, -U, -d and --sslmode flags.
// There is no password flag; use PGPASSWORD, ~/.pgpass or a connection string.
type GranularConnFlags struct {
	Host     string
	Port     int
	Username string
	Database string
	SSLMode  string
}

// IsEmpty reports whether no server-selecting flag was given. Database is
// excluded because -d may override the database of a connection string.
func (g *GranularConnFlags) IsEmpty() bool {
	return g == nil || (g.Host == "" && g.Port == 0 && g.Username == "" && g.SSLMode == "")
}

// AuthFlags select a cloud authentication method.
type AuthFlags struct {
	AWS            bool
	AWSRegion      string
	Azure          bool
	AzureTenantID  string
	AzureClientID  string
	Google         bool
	GoogleInstance string
}

// EnvVars are the libpq and cloud SDK environment variables the resolver reads.
type EnvVars struct {
	ConnectionString string // VENDORSUM_CONNECTION_STRING or DATABASE_URL
	PGHOST           string
	PGPORT           string
	PGUSER           string
	PGPASSWORD       string
	PGDATABASE       string
	PGSSLMODE        string

	AWSRegion         string // AWS_REGION or AWS_DEFAULT_REGION
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string
}

// LoadFromEnvironment reads EnvVars from the process environment.
func LoadFromEnvironment() *EnvVars {
	return &EnvVars{
		ConnectionString:  firstNonEmpty(os.Getenv(ConnectionStringEnvVar), os.Getenv("DATABASE_URL")),
		PGHOST:            os.Getenv("PGHOST"),
		PGPORT:            os.Getenv("PGPORT"),
		PGUSER:            os.Getenv("PGUSER"),
		PGPASSWORD:        os.Getenv("PGPASSWORD"),
		PGDATABASE:        os.Getenv("PGDATABASE"),
		PGSSLMODE:         os.Getenv("PGSSLMODE"),
		AWSRegion:         firstNonEmpty(os.Getenv("AWS_REGION"), os.Getenv("AWS_DEFAULT_REGION")),
		AzureTenantID:     os.Getenv("AZURE_TENANT_ID"),
		AzureClientID:     os.Getenv("AZURE_CLIENT_ID"),
		AzureClientSecret: os.Getenv("AZURE_CLIENT_SECRET"),
	}
}

// ResolveConnectionParams merges every connection source. A connection string
// wins outright: --connection first, then the environment one when no
// granular flag is set. Otherwise each field is taken from the first source
// that sets it: flag, PG* variable, vendorsum.yaml, default. -d always
// overrides the database. Giving --connection together with -h, -p, -U or
// --sslmode is an error.
func ResolveConnectionParams(
	connStringFlag string,
	flags *GranularConnFlags,
	auth *AuthFlags,
	env *EnvVars,
	projectConfig *config.ProjectConfig,
) (*vendorsum.ConnectionConfig, error) {
	if flags == nil {
		flags = &GranularConnFlags{}
	}
	if auth == nil {
		auth = &AuthFlags{}
	}
	if env == nil {
		env = &EnvVars{}
	}
	var pc config.ConnectionConfig
	if projectConfig != nil {
		pc = projectConfig.Connection
	}

	if connStringFlag != "" && !flags.IsEmpty() {
		return nil, fmt.Errorf("cannot combine --connection with -h, -p, -U or --sslmode: %w", vendorsum.ErrInvalidConfig)
	}

	var cfg *vendorsum.ConnectionConfig
	var err error
	switch {
	case connStringFlag != "":
		cfg, err = fromConnectionString(connStringFlag, env)
	case flags.IsEmpty() && env.ConnectionString != "":
		cfg, err = fromConnectionString(env.ConnectionString, env)
	default:
		cfg, err = fromGranular(flags, env, pc)
	}
	if err != nil {
		return nil, err
	}

	if flags.Database != "" {
		cfg.Database = flags.Database
	}

	if err := applyAuth(cfg, auth, env, pc); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromConnectionString(connStr string, env *EnvVars) (*vendorsum.ConnectionConfig, error) {
	cfg, err := ParseConnectionString(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}
	if cfg.Password == "" {
		cfg.Password = env.PGPASSWORD
	}
	cfg.SSLMode = firstNonEmpty(cfg.SSLMode, env.PGSSLMODE, defaultSSLMode)
	return cfg, nil
}

func fromGranular(flags *GranularConnFlags, env *EnvVars, pc config.ConnectionConfig) (*vendorsum.ConnectionConfig, error) {
	cfg := &vendorsum.ConnectionConfig{
		Host:             firstNonEmpty(flags.Host, env.PGHOST, pc.Host, defaultHost),
		Username:         firstNonEmpty(flags.Username, env.PGUSER, pc.Username, os.Getenv("USER"), os.Getenv("USERNAME")),
		Password:         env.PGPASSWORD,
		Database:         firstNonEmpty(flags.Database, env.PGDATABASE, pc.Database, defaultDatabase),
		SSLMode:          firstNonEmpty(flags.SSLMode, env.PGSSLMODE, pc.SSLMode, defaultSSLMode),
		SSLCert:          pc.SSLCert,
		SSLKey:           pc.SSLKey,
		SSLRootCert:      pc.SSLRootCert,
		AuthMethod:       vendorsum.AuthMethodStandard,
		AdditionalParams: make(map[string]string),
	}

	switch {
	case flags.Port != 0:
		cfg.Port = flags.Port
	case env.PGPORT != "":
		port, err := strconv.Atoi(env.PGPORT)
		if err != nil {
			return nil, fmt.Errorf("invalid $PGPORT value %q: must be an integer: %w", env.PGPORT, vendorsum.ErrInvalidConfig)
		}
		cfg.Port = port
	case pc.Port != 0:
		cfg.Port = pc.Port
	default:
		cfg.Port = defaultPort
	}
	return cfg, nil
}

// applyAuth picks the authentication method. Flags win over vendorsum.yaml;
// only one cloud method may be selected.
func applyAuth(cfg *vendorsum.ConnectionConfig, auth *AuthFlags, env *EnvVars, pc config.ConnectionConfig) error {
	selected := 0
	for _, on := range []bool{auth.AWS, auth.Azure, auth.Google} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		return fmt.Errorf("--aws, --azure and --google are mutually exclusive: %w", vendorsum.ErrInvalidConfig)
	}

	method := cfg.AuthMethod
	switch {
	case auth.AWS:
		method = vendorsum.AuthMethodAWSIAM
	case auth.Azure:
		method = vendorsum.AuthMethodAzureEntraID
	case auth.Google:
		method = vendorsum.AuthMethodGoogleIAM
	case pc.AuthMethod != "":
		parsed, err := ParseAuthMethod(pc.AuthMethod)
		if err != nil {
			return err
		}
		method = parsed
	}
	cfg.AuthMethod = method

	switch method {
	case vendorsum.AuthMethodAWSIAM:
		cfg.AWSRegion = firstNonEmpty(auth.AWSRegion, env.AWSRegion, pc.AWSRegion)
	case vendorsum.AuthMethodAzureEntraID:
		cfg.AzureTenantID = firstNonEmpty(auth.AzureTenantID, env.AzureTenantID, pc.AzureTenantID)
		cfg.AzureClientID = firstNonEmpty(auth.AzureClientID, env.AzureClientID, pc.AzureClientID)
		cfg.AzureClientSecret = env.AzureClientSecret
	case vendorsum.AuthMethodGoogleIAM:
		cfg.GoogleInstance = firstNonEmpty(auth.GoogleInstance, pc.GoogleInstance)
	}
	return nil
}

// ParseAuthMethod maps the auth_method names accepted in vendorsum.yaml.
func ParseAuthMethod(name string) (vendorsum.AuthMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard", "password":
		return vendorsum.AuthMethodStandard, nil
	case "aws", "aws_iam", "aws-iam":
		return vendorsum.AuthMethodAWSIAM, nil
	case "azure", "entra", "azure_entra_id":
		return vendorsum.AuthMethodAzureEntraID, nil
	case "google", "gcp", "google_iam":
		return vendorsum.AuthMethodGoogleIAM, nil
	default:
		return 0, fmt.Errorf("unknown auth_method %q: %w", name, vendorsum.ErrUnsupportedAuthMethod)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
