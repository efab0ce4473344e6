package subgraph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second, nil), server
}

func TestFetchPageSendsCursorVariables(t *testing.T) {
	var captured graphQLRequest
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"data":{"pools":[]}}`))
	})
	defer server.Close()

	pools, err := client.FetchPage(context.Background(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools) != 0 {
		t.Fatalf("expected empty page, got %d pools", len(pools))
	}
	if captured.Variables["createdAfter"] != "500" {
		t.Fatalf("createdAfter variable mismatch: %v", captured.Variables["createdAfter"])
	}
	if captured.Variables["first"] != float64(PageSize) {
		t.Fatalf("first variable mismatch: %v", captured.Variables["first"])
	}
	if captured.Query == "" {
		t.Fatalf("query missing from request")
	}
}

func TestFetchPageDecodesPools(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"pools":[
			{"id":"0xabc","createdAtTimestamp":"1620000000",
			 "token0":{"id":"0x1","name":"USD Coin","symbol":"USDC"},
			 "token1":{"id":"0x2","name":"Wrapped Ether","symbol":"WETH"}}
		]}}`))
	})
	defer server.Close()

	pools, err := client.FetchPage(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools) != 1 {
		t.Fatalf("expected one pool, got %d", len(pools))
	}
	if pools[0].ID != "0xabc" || pools[0].Token0.Symbol != "USDC" || pools[0].Token1.Name != "Wrapped Ether" {
		t.Fatalf("pool decoded incorrectly: %+v", pools[0])
	}
	ts, err := pools[0].CreatedAt()
	if err != nil {
		t.Fatalf("parse timestamp: %v", err)
	}
	if ts != 1620000000 {
		t.Fatalf("timestamp mismatch: %d", ts)
	}
}

func TestFetchPageHTTPError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.FetchPage(context.Background(), 0)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("status code mismatch: %d", httpErr.StatusCode)
	}
}

func TestFetchPageGraphQLErrors(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"indexing error"},{"message":"bad field"}]}`))
	})
	defer server.Close()

	_, err := client.FetchPage(context.Background(), 0)
	if !errors.Is(err, ErrGraphQLErrors) {
		t.Fatalf("expected ErrGraphQLErrors, got %v", err)
	}
}

func TestFetchPageMissingData(t *testing.T) {
	for _, body := range []string{`{}`, `{"data":null}`, `{"data":{}}`} {
		client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(body))
		})

		_, err := client.FetchPage(context.Background(), 0)
		server.Close()
		if !errors.Is(err, ErrNoPoolsData) {
			t.Fatalf("body %s: expected ErrNoPoolsData, got %v", body, err)
		}
	}
}

func TestFetchPageTransportErrorOmitsCredential(t *testing.T) {
	endpoint, err := ResolveEndpoint("1", "SUPERSECRETKEY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Port 1 is unroutable, so the request fails at dial time.
	endpoint = strings.Replace(endpoint, "gateway.thegraph.com", "127.0.0.1:1", 1)
	client := NewClient(endpoint, time.Second, nil)

	_, err = client.FetchPage(context.Background(), 0)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if strings.Contains(err.Error(), "SUPERSECRETKEY") {
		t.Fatalf("credential leaked into error: %v", err)
	}
	if strings.Contains(err.Error(), endpoint) {
		t.Fatalf("endpoint leaked into error: %v", err)
	}
}

func TestFetchPageMalformedBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	})
	defer server.Close()

	_, err := client.FetchPage(context.Background(), 0)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if errors.Is(err, ErrNoPoolsData) || errors.Is(err, ErrGraphQLErrors) {
		t.Fatalf("malformed body misclassified: %v", err)
	}
}
