package model

import (
	"fmt"
	"strconv"
)

// RawToken is one side of a pool as returned by the subgraph.
type RawToken struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// RawPool is a V3 pool record as returned by the subgraph. The creation
// timestamp arrives as a decimal string because graph-node serializes
// BigInt values that way.
type RawPool struct {
	ID                 string   `json:"id"`
	CreatedAtTimestamp string   `json:"createdAtTimestamp"`
	Token0             RawToken `json:"token0"`
	Token1             RawToken `json:"token1"`
}

// CreatedAt parses the creation timestamp into unix seconds.
func (p RawPool) CreatedAt() (int64, error) {
	ts, err := strconv.ParseInt(p.CreatedAtTimestamp, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse createdAtTimestamp %q for pool %s: %w", p.CreatedAtTimestamp, p.ID, err)
	}
	return ts, nil
}
