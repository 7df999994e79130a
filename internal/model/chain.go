// Package model holds the core data types shared across the comparator.
package model

import (
	"fmt"
	"strings"
)

// Chain identifies which blockchain both endpoints must serve.
type Chain string

var (
	Bitcoin Chain = "bitcoin"
	Fractal Chain = "fractal"
)

// ParseChain converts a string to a Chain, case-insensitive.
func ParseChain(value string) (Chain, error) {
	switch Chain(strings.ToLower(value)) {
	case Bitcoin:
		return Bitcoin, nil
	case Fractal:
		return Fractal, nil
	default:
		return "", fmt.Errorf("unknown chain %q, valid options: %s, %s", value, Bitcoin, Fractal)
	}
}

// FirstProtocolHeight returns the height at which the protocol became active on
// the chain. Used as the default start height when none is configured.
func (c Chain) FirstProtocolHeight(p Protocol) (uint64, error) {
	switch c {
	case Bitcoin:
		switch p {
		case Ordinal:
			return 767430, nil
		case BRC20:
			return 779832, nil
		}
	case Fractal:
		switch p {
		case Ordinal, BRC20:
			return 21000, nil
		}
	}
	return 0, fmt.Errorf("no first height for chain %q protocol %q", c, p)
}
