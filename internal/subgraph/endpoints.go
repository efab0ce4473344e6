package subgraph

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const apiKeyPlaceholder = "{api-key}"

// endpoints maps a numeric chain identifier to the gateway URL template for
// that network's Uniswap v3 subgraph. Each template carries exactly one
// api-key placeholder. The table is read-only after init.
var endpoints = map[string]string{
	"1":     "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/5zvR82QoaXYFyDEKLZ9t6v9adgnptxYpKpSbxtgVENFV",
	"10":    "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/Cghf4LfVqPiFw6fp6Y5X5Ubc8UpmUhSfJL82zwiBFLaj",
	"137":   "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/3hCPRGf4z88VC5rsBKU5AA9FBBq5nF3jbKJG7VZCbhjm",
	"8453":  "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/43Hwfi3dJSoGpyas9VwNoDAv55yjgGrPpNSmbQZArzMG",
	"42161": "https://gateway.thegraph.com/api/{api-key}/subgraphs/id/FbCGRftH4a3yZugY7TnbYgPJVEv2LvMT6oF1fxPe9aJM",
}

// SupportedNetworks returns the known network identifiers in numeric order.
func SupportedNetworks() []string {
	networks := make([]string, 0, len(endpoints))
	for network := range endpoints {
		networks = append(networks, network)
	}
	sort.Slice(networks, func(i, j int) bool {
		a, _ := strconv.ParseUint(networks[i], 10, 64)
		b, _ := strconv.ParseUint(networks[j], 10, 64)
		return a < b
	})
	return networks
}

// ResolveEndpoint maps a network identifier to a finished endpoint URL with
// the URL-escaped credential substituted for the placeholder.
func ResolveEndpoint(network, apiKey string) (string, error) {
	if _, err := strconv.ParseUint(network, 10, 64); err != nil {
		return "", unsupportedNetworkError(network)
	}
	template, ok := endpoints[network]
	if !ok {
		return "", unsupportedNetworkError(network)
	}
	return strings.Replace(template, apiKeyPlaceholder, url.PathEscape(apiKey), 1), nil
}

func unsupportedNetworkError(network string) error {
	return fmt.Errorf("unsupported network %q, supported networks: %s", network, strings.Join(SupportedNetworks(), ", "))
}
