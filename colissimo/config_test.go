package colissimo

import (
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestResolveCredentialsExplicit(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(KeyContractNumber, "999")
	viper.Set(KeyPassword, "global-password")

	creds, err := ResolveCredentials("123", "password")
	assert.NoError(t, err)
	assert.Equal(t, 123, creds.ContractNumber)
	assert.Equal(t, "password", creds.Password)
}

func TestResolveCredentialsFallback(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(KeyContractNumber, "999")
	viper.Set(KeyPassword, "global-password")

	creds, err := ResolveCredentials("", "")
	assert.NoError(t, err)
	assert.Equal(t, 999, creds.ContractNumber)
	assert.Equal(t, "global-password", creds.Password)
}

func TestResolveCredentialsMissing(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	var cfgErr *ConfigError
	_, err := ResolveCredentials("", "password")
	assert.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))

	_, err = ResolveCredentials("123", "")
	assert.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))
}

func TestResolveCredentialsNotAnInt(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	var cfgErr *ConfigError
	_, err := ResolveCredentials("contract_number", "password")
	assert.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))
}
