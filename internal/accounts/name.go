// Package accounts checks ledger account names such as "Assets:PayPal".
package accounts

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cleared-dev/paypalbean/internal/model"
)

// component matches every name component after the root.
var component = regexp.MustCompile(`^[\p{Lu}\p{Nd}][\p{L}\p{Nd}-]*$`)

// Validate reports whether name is a well-formed account name: a root type
// followed by one or more capitalized components.
func Validate(name string) error {
	_, err := Type(name)
	return err
}

// Type returns the root type of name after validating it.
func Type(name string) (model.AccountType, error) {
	parts := strings.Split(name, model.AccountSeparator)
	if len(parts) < 2 {
		return "", fmt.Errorf("account %q: need a root and at least one component", name)
	}

	root := model.AccountType(parts[0])
	known := false
	for _, t := range model.AccountTypes {
		if t == root {
			known = true
			break
		}
	}
	if !known {
		return "", fmt.Errorf("account %q: unknown root %q", name, parts[0])
	}

	for _, p := range parts[1:] {
		if !component.MatchString(p) {
			return "", fmt.Errorf("account %q: invalid component %q", name, p)
		}
	}
	return root, nil
}

// Path turns an account name into a relative directory path,
// "Assets:PayPal" becoming "Assets/PayPal".
func Path(name string) string {
	return filepath.Join(strings.Split(name, model.AccountSeparator)...)
}
