package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// Provider resolves a currency code into the rules the engines consume
type Provider interface {
	Resolve(code string) (string, Rules, error)
	Rules(code string) (Rules, error)
}

// ISOProvider resolves ISO 4217 codes using CLDR data, consulting
// configured overrides first
type ISOProvider struct {
	defaultCode string
	overrides   map[string]int
}

// NewISOProvider creates a provider. Blank codes resolve to defaultCode.
func NewISOProvider(defaultCode string, overrides map[string]int) *ISOProvider {
	normalized := make(map[string]int, len(overrides))
	for code, places := range overrides {
		normalized[normalizeCode(code)] = places
	}
	return &ISOProvider{
		defaultCode: normalizeCode(defaultCode),
		overrides:   normalized,
	}
}

// DefaultCode returns the code used when a request omits one
func (p *ISOProvider) DefaultCode() string {
	return p.defaultCode
}

// Resolve returns the canonical code together with its rules
func (p *ISOProvider) Resolve(code string) (string, Rules, error) {
	code = normalizeCode(code)
	if code == "" {
		code = p.defaultCode
	}

	if places, ok := p.overrides[code]; ok {
		rules, err := NewRules(places)
		if err != nil {
			return "", Rules{}, fmt.Errorf("currency %s: %w", code, err)
		}
		return code, rules, nil
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", Rules{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	scale, _ := currency.Standard.Rounding(unit)
	rules, err := NewRules(scale)
	if err != nil {
		return "", Rules{}, fmt.Errorf("currency %s: %w", code, err)
	}
	return unit.String(), rules, nil
}

// Rules implements Provider
func (p *ISOProvider) Rules(code string) (Rules, error) {
	_, rules, err := p.Resolve(code)
	return rules, err
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
