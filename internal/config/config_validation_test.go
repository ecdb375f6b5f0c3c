package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.AccessTokenSecret = "access"
	cfg.App.RefreshTokenSecret = "refresh"
	cfg.Storage.DB.DSN = "postgres://localhost/cinetrack"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing access secret", mutate: func(c *StructuredConfig) { c.App.AccessTokenSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "same secrets", mutate: func(c *StructuredConfig) { c.App.RefreshTokenSecret = "access" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero refresh duration", mutate: func(c *StructuredConfig) { c.App.RefreshTokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -1 }, wantErr: ErrInvalidServerConfigs},
		{name: "zero burst", mutate: func(c *StructuredConfig) { c.Server.AuthRateBurst = 0 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "localhost:5000", RequestTimeout: DefaultAdapterTimeout, RetryCount: 3, RetryWaitUnit: DefaultRetryWaitUnit},
		Storage: ClientStorage{TokenStoreDSN: DefaultTokenStoreDSN},
	}
	assert.NoError(t, valid.validate())

	noStore := valid
	noStore.Storage.TokenStoreDSN = ""
	assert.ErrorIs(t, noStore.validate(), ErrInvalidStorageConfigs)

	noAddress := valid
	noAddress.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddress.validate(), ErrInvalidAdapterConfigs)

	noWait := valid
	noWait.Adapter.RetryWaitUnit = 0
	assert.ErrorIs(t, noWait.validate(), ErrInvalidAdapterConfigs)
}
