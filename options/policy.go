package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=PolicyEnum -linecomment -output=policy_string.go

// PolicyEnum selects how members without a label are resolved. It is chosen once per enum.
type PolicyEnum int

const (
	_ PolicyEnum = iota // skip zero value, use it as the unset (invalid) policy

	PolicyIgnore  // ignore
	PolicyThrow   // throw
	PolicyUseName // use-name

	// PolicyTotal is a constant that represents the total number of policies defined
	PolicyTotal = int(iota)
)

// ErrInvalidPolicy is returned by ParsePolicy for unrecognized selectors.
var ErrInvalidPolicy = errors.New("invalid absence policy")

var policyNames = map[string]PolicyEnum{
	"ignore":                             PolicyIgnore,
	"ignore-enum-without-description":    PolicyIgnore,
	"throw":                              PolicyThrow,
	"throw-at-runtime":                   PolicyThrow,
	"throw-for-enum-without-description": PolicyThrow,
	"use-name":                           PolicyUseName,
	"use-member-name":                    PolicyUseName,
	"use-itself-when-no-description":     PolicyUseName,
}

// ParsePolicy parses a policy selector. Text names are matched case-insensitively;
// the integers 1, 2 and 3 select Ignore, Throw and UseName.
func ParsePolicy(s string) (PolicyEnum, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty selector", ErrInvalidPolicy)
	}

	if n, err := strconv.Atoi(s); err == nil {
		p := PolicyEnum(n)
		if !p.IsValid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidPolicy, n)
		}

		return p, nil
	}

	p, ok := policyNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}

	return p, nil
}

// IsValid reports whether p is one of the declared policies.
func (p PolicyEnum) IsValid() bool {
	return p >= PolicyIgnore && int(p) < PolicyTotal
}

// MarshalText implements encoding.TextMarshaler.
func (p PolicyEnum) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, int(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PolicyEnum) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}

	*p = v

	return nil
}
