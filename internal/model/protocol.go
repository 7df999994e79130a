package model

import (
	"fmt"
	"strings"
)

// Protocol selects which comparator and receipt schema apply.
type Protocol string

var (
	Ordinal Protocol = "ordinal"
	BRC20   Protocol = "brc20"
)

// ParseProtocol converts a string to a Protocol, case-insensitive.
func ParseProtocol(value string) (Protocol, error) {
	switch Protocol(strings.ToLower(value)) {
	case Ordinal:
		return Ordinal, nil
	case BRC20:
		return BRC20, nil
	default:
		return "", fmt.Errorf("unknown protocol %q, valid options: %s, %s", value, Ordinal, BRC20)
	}
}
