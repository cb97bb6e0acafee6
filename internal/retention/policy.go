package retention

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyPolicy is returned for a policy string with no rules.
	ErrEmptyPolicy = errors.New("retention policy has no rules")
	// ErrInvalidRule is returned for a malformed or unknown rule.
	ErrInvalidRule = errors.New("invalid retention rule")
)

var ruleFactories = map[string]func(n int) Rule{
	"latest":     func(n int) Rule { return KeepLatest{N: n} },
	"daily":      func(n int) Rule { return KeepDaily{Days: n} },
	"weekly":     func(n int) Rule { return KeepWeekly{Weeks: n} },
	"monthly":    func(n int) Rule { return KeepMonthly{Months: n} },
	"versions":   func(n int) Rule { return KeepPerVersion{Versions: n} },
	"meaningful": func(n int) Rule { return KeepMeaningful{N: n} },
}

// ParsePolicy builds a policy from a comma separated list of name:count
// rules, for example "latest:10,daily:7,weekly:4,monthly:6,versions:3,meaningful:5".
func ParsePolicy(s string) (Policy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyPolicy
	}

	var policy Policy
	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRule, part)
		}

		factory, known := ruleFactories[strings.ToLower(strings.TrimSpace(name))]
		if !known {
			return nil, fmt.Errorf("%w: unknown rule %q", ErrInvalidRule, name)
		}

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q needs a positive count", ErrInvalidRule, part)
		}

		policy = append(policy, factory(n))
	}

	return policy, nil
}
