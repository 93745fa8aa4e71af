package colissimo

import (
	"strconv"

	"github.com/spf13/viper"
)

//Process-wide configuration keys
const (
	KeyContractNumber = "socolissimo.contractnumber"
	KeyPassword       = "socolissimo.password"
)

// Credentials is the merchant contract used to authenticate calls.
type Credentials struct {
	ContractNumber int
	Password       string
}

// ResolveCredentials resolves the merchant credentials.
// Explicit arguments win, empty ones fall back on the process-wide
// viper configuration (KeyContractNumber, KeyPassword).
func ResolveCredentials(contractNumber, password string) (Credentials, error) {
	if contractNumber == "" {
		contractNumber = viper.GetString(KeyContractNumber)
	}
	if password == "" {
		password = viper.GetString(KeyPassword)
	}
	if contractNumber == "" {
		return Credentials{}, &ConfigError{Reason: "Please provide a socolissimo contract number"}
	}
	if password == "" {
		return Credentials{}, &ConfigError{Reason: "Please provide a socolissimo password"}
	}
	num, err := strconv.Atoi(contractNumber)
	if err != nil {
		return Credentials{}, &ConfigError{Reason: "SoColissimo contract number must be an int"}
	}
	return Credentials{ContractNumber: num, Password: password}, nil
}
