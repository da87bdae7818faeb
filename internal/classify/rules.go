package classify

import (
	"fmt"

	"github.com/spf13/viper"
)

// Rules holds the register code constants that drive classification. Register
// firmware revisions move these codes around, so none of them are hard-coded
// in the classifier itself.
type Rules struct {
	// DropCodes are transaction-type codes for technical/void operations.
	// A record carrying one of these is excluded from the report entirely.
	DropCodes []string `mapstructure:"drop_codes"`

	// ReversalCode is the transaction-type code marking a storno line. It is
	// orthogonal to the receipt-type kind: a reversed line keeps its kind and
	// is additionally tagged.
	ReversalCode string `mapstructure:"reversal_code"`

	// Receipt-type codes deciding the operation kind. Anything not listed is
	// a sale.
	ReturnCode     string `mapstructure:"return_code"`
	DepositCode    string `mapstructure:"deposit_code"`
	WithdrawalCode string `mapstructure:"withdrawal_code"`

	// ValidState is the receipt validity state meaning the receipt counts
	// toward the sales/storno/returns breakdown. Any other state routes the
	// whole receipt amount to the cancelled total.
	ValidState string `mapstructure:"valid_state"`
}

// DefaultRules returns the code set of the current register firmware.
func DefaultRules() Rules {
	return Rules{
		DropCodes:      []string{"55", "56"},
		ReversalCode:   "12",
		ReturnCode:     "1",
		DepositCode:    "4",
		WithdrawalCode: "5",
		ValidState:     "1",
	}
}

// LoadRules loads classification rules from a config file (YAML or TOML,
// decided by extension), falling back to the defaults for any key the file
// does not set.
func LoadRules(path string) (Rules, error) {
	defaults := DefaultRules()

	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("drop_codes", defaults.DropCodes)
	v.SetDefault("reversal_code", defaults.ReversalCode)
	v.SetDefault("return_code", defaults.ReturnCode)
	v.SetDefault("deposit_code", defaults.DepositCode)
	v.SetDefault("withdrawal_code", defaults.WithdrawalCode)
	v.SetDefault("valid_state", defaults.ValidState)

	if err := v.ReadInConfig(); err != nil {
		return defaults, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules Rules
	if err := v.Unmarshal(&rules); err != nil {
		return defaults, fmt.Errorf("failed to unmarshal rules: %w", err)
	}

	return rules, nil
}

// dropped reports whether the transaction-type code is on the exclusion list.
func (r Rules) dropped(opType string) bool {
	for _, code := range r.DropCodes {
		if opType == code {
			return true
		}
	}
	return false
}

// IsValidState reports whether a receipt validity state counts as valid.
func (r Rules) IsValidState(state string) bool {
	return state == r.ValidState
}
