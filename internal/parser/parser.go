// Package parser puts os.Args and environment into run parameters and validates them
package parser

import (
	"errors"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/spf13/viper"
)

// CaseInsensitiveEnv - при наличии переменной (с любым значением) поиск не учитывает регистр
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

var ErrInsufficientArguments = errors.New("not enough arguments")

// NewConfig builds Config from the full argument list: args[0] is the program name,
// args[1] the query and args[2] the target. Extra arguments are ignored.
func NewConfig(args []string, caseSensitive bool) (*model.Config, error) {
	if len(args) < 3 {
		return nil, ErrInsufficientArguments
	}

	// строки копируются в Config, срез аргументов дальше не нужен
	return &model.Config{
		Query:         args[1],
		Target:        args[2],
		CaseSensitive: caseSensitive,
	}, nil
}

// ResolveCaseSensitive returns false if ignoreCase is set or CASE_INSENSITIVE is present in the environment.
func ResolveCaseSensitive(v *viper.Viper, ignoreCase bool) bool {
	if ignoreCase {
		return false
	}

	// пустое значение переменной тоже считается включенным флагом
	v.AllowEmptyEnv(true)
	if err := v.BindEnv("case_insensitive", CaseInsensitiveEnv); err != nil {
		return true
	}
	return !v.IsSet("case_insensitive")
}

// InitServerParam reads serve-mode parameters: flags bound to v, MINIGREP_* env, then the optional config file.
func InitServerParam(v *viper.Viper, cfgFile string) (*model.ServerParam, error) {
	v.SetEnvPrefix("MINIGREP")
	v.AutomaticEnv()
	v.SetDefault("address", model.DefaultServerAddress)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	param := &model.ServerParam{
		Address: v.GetString("address"),
		Verbose: v.GetBool("verbose"),
	}
	if param.Address == "" {
		return nil, errors.New("empty server address")
	}
	return param, nil
}
