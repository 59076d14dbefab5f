package source

import (
	"context"
	"strings"
)

// PrefixScopeOracle treats a URL as in scope when it starts with one of the
// configured prefixes. Matching ignores case. With no prefixes nothing is
// in scope.
type PrefixScopeOracle struct {
	prefixes []string
}

// NewPrefixScopeOracle returns an oracle for prefixes. Blank entries are
// dropped.
func NewPrefixScopeOracle(prefixes []string) *PrefixScopeOracle {
	normalized := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			normalized = append(normalized, p)
		}
	}
	return &PrefixScopeOracle{prefixes: normalized}
}

// IsInScope implements the scope oracle contract.
func (o *PrefixScopeOracle) IsInScope(ctx context.Context, url string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	u := strings.ToLower(url)
	for _, p := range o.prefixes {
		if strings.HasPrefix(u, p) {
			return true, nil
		}
	}
	return false, nil
}
