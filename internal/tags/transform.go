package tags

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"poolTags/internal/model"
)

const (
	projectName = "Uniswap v3"
	websiteURL  = "https://uniswap.org"

	// nameTagMax bounds the SYM0/SYM1 segment of the name tag. The literal
	// " Pool" suffix is appended after truncation.
	nameTagMax = 45
)

// Transformer maps raw subgraph pool records into contract tags, dropping
// records whose token metadata fails validation.
type Transformer struct {
	network string
	logger  *zap.Logger
}

func NewTransformer(network string, logger *zap.Logger) *Transformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transformer{network: network, logger: logger}
}

// BuildTags converts one page of pool records, preserving the relative order
// of accepted records. Rejected records are logged and skipped; they never
// fail the call.
func (t *Transformer) BuildTags(pools []model.RawPool) []model.Tag {
	out := make([]model.Tag, 0, len(pools))
	for _, pool := range pools {
		if bad := invalidFields(pool); len(bad) > 0 {
			t.logger.Warn("rejected pool with invalid token metadata",
				zap.String("pool", pool.ID),
				zap.Strings("fields", bad),
			)
			continue
		}
		out = append(out, t.buildTag(pool))
	}
	return out
}

func (t *Transformer) buildTag(pool model.RawPool) model.Tag {
	pair := pool.Token0.Symbol + "/" + pool.Token1.Symbol
	return model.Tag{
		ContractAddress: fmt.Sprintf("eip155:%s:%s", t.network, pool.ID),
		NameTag:         Truncate(pair, nameTagMax) + " Pool",
		ProjectName:     projectName,
		Website:         websiteURL,
		Note: fmt.Sprintf(
			"This is a Uniswap v3 liquidity pool contract between %s (%s) and %s (%s).",
			pool.Token0.Name, pool.Token0.Symbol, pool.Token1.Name, pool.Token1.Symbol,
		),
	}
}

// invalidFields names every rejected token field with its value and reason,
// e.g. `token0.name "" (empty)`.
func invalidFields(pool model.RawPool) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"token0.name", pool.Token0.Name},
		{"token0.symbol", pool.Token0.Symbol},
		{"token1.name", pool.Token1.Name},
		{"token1.symbol", pool.Token1.Symbol},
	}

	var bad []string
	for _, field := range fields {
		if ValidText(field.value) {
			continue
		}
		reason := "contains markup"
		if strings.TrimSpace(field.value) == "" {
			reason = "empty"
		}
		bad = append(bad, fmt.Sprintf("%s %q (%s)", field.name, field.value, reason))
	}
	return bad
}
