package subgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphQLErrors signals a response carrying a GraphQL error list. The
	// individual messages are logged by the client, not carried here.
	ErrGraphQLErrors = errors.New("GraphQL errors occurred")

	// ErrNoPoolsData signals a response missing the expected pools payload.
	ErrNoPoolsData = errors.New("no pools data found")
)

// HTTPError reports a non-success transport status from the gateway.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("subgraph request failed with status %d", e.StatusCode)
}
