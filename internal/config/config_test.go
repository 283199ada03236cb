package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 15
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
auth:
  jwt_public_key: "test-key"
  api_keys:
    - "key-1"
    - "key-2"
ethereum:
  rpc_url: "https://api.avax-test.network/ext/bc/C/rpc"
  chain_id: 43113
  contract_address: "0x1111111111111111111111111111111111111111"
  price_feed_address: "0x2222222222222222222222222222222222222222"
  call_timeout: "5s"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.ReadTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "testpass", cfg.Database.Password)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "test-key", cfg.Auth.JWTPublicKey)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
				assert.Equal(t, "https://api.avax-test.network/ext/bc/C/rpc", cfg.Ethereum.RPCURL)
				assert.Equal(t, int64(43113), cfg.Ethereum.ChainID)
				assert.Equal(t, "0x1111111111111111111111111111111111111111", cfg.Ethereum.ContractAddress)
				assert.Equal(t, "0x2222222222222222222222222222222222222222", cfg.Ethereum.PriceFeedAddress)
				assert.Equal(t, 5*time.Second, cfg.Ethereum.CallTimeout)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
ethereum:
  rpc_url: "http://localhost:8545"
  contract_address: "0x1111111111111111111111111111111111111111"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 10, cfg.Server.WriteTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, int64(43113), cfg.Ethereum.ChainID)
				assert.Equal(t, 10*time.Second, cfg.Ethereum.CallTimeout)
				assert.Equal(t, uint64(3), cfg.Ethereum.MaxRetries)
				assert.Equal(t, 60*time.Second, cfg.Ethereum.PriceCacheTTL)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
database:
  host: [broken
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			configPath := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.configFile), 0o600))

			cfg, err := LoadAPIConfig(configPath, dir)
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadAPIConfigFromEnv(t *testing.T) {
	t.Setenv("PROPCHAIN_DATABASE_HOST", "envhost")
	t.Setenv("PROPCHAIN_DATABASE_PASSWORD", "envpass")
	t.Setenv("PROPCHAIN_ETHEREUM_RPC_URL", "http://env:8545")
	t.Setenv("PROPCHAIN_ETHEREUM_CONTRACT_ADDRESS", "0x3333333333333333333333333333333333333333")
	t.Setenv("PROPCHAIN_SERVER_PORT", "9000")

	cfg, err := LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "envhost", cfg.Database.Host)
	assert.Equal(t, "envpass", cfg.Database.Password)
	assert.Equal(t, "http://env:8545", cfg.Ethereum.RPCURL)
	assert.Equal(t, "0x3333333333333333333333333333333333333333", cfg.Ethereum.ContractAddress)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user",
		Password: "pass",
		DBName:   "propchain",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=user password=pass dbname=propchain sslmode=disable",
		cfg.DSN())
}
