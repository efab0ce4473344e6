package subgraph

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"poolTags/internal/model"
)

// PageSize is the fixed record cap per pool query. A page shorter than this
// signals exhaustion to the caller.
const PageSize = 1000

//go:embed queries/pools.graphql
var poolsQuery string

// Client issues paged pool queries against a resolved subgraph endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client for one endpoint. The endpoint already carries
// the substituted credential and must never be logged.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type poolsResponse struct {
	Data *struct {
		Pools []model.RawPool `json:"pools"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// FetchPage requests one page of pools created strictly after cursor,
// ordered ascending by creation timestamp. The cursor is sent as a string
// because the subgraph types it as BigInt.
func (c *Client) FetchPage(ctx context.Context, cursor int64) ([]model.RawPool, error) {
	body, err := json.Marshal(graphQLRequest{
		Query: poolsQuery,
		Variables: map[string]interface{}{
			"first":        PageSize,
			"createdAfter": strconv.FormatInt(cursor, 10),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal pools query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build pools request: %w", transportError(err))
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute pools request: %w", transportError(err))
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode > 299 {
		io.Copy(io.Discard, res.Body)
		return nil, &HTTPError{StatusCode: res.StatusCode}
	}

	var decoded poolsResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode pools response: %w", err)
	}

	if len(decoded.Errors) > 0 {
		for _, gqlErr := range decoded.Errors {
			c.logger.Error("subgraph returned error", zap.String("message", gqlErr.Message))
		}
		return nil, ErrGraphQLErrors
	}

	if decoded.Data == nil || decoded.Data.Pools == nil {
		return nil, ErrNoPoolsData
	}

	return decoded.Data.Pools, nil
}

// transportError strips the request URL from client errors. The URL carries
// the substituted credential, which must never reach a log or error message.
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
