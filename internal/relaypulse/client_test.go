package relaypulse

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient()
	c.url = server.URL + "/api/status?period=24h"
	return c
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v (%T), want *FetchError", err, err)
	}
	if fe.Kind != want {
		t.Fatalf("error kind = %s, want %s (err: %v)", fe.Kind, want, err)
	}
	if fe.Error() == "" {
		t.Fatalf("error message is empty")
	}
}

func TestNewClient_UsesFixedURLAndNoTimeout(t *testing.T) {
	c := NewClient()
	if c.url != StatusURL {
		t.Fatalf("url = %q, want %q", c.url, StatusURL)
	}
	if c.http.Timeout != 0 {
		t.Fatalf("timeout = %v, want none", c.http.Timeout)
	}

	c = NewClient(WithTimeout(3 * time.Second))
	if c.http.Timeout != 3*time.Second {
		t.Fatalf("timeout = %v, want 3s", c.http.Timeout)
	}
}

func TestClient_FetchStatusParsesTree(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPeriod, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPeriod = r.URL.Query().Get("period")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"a":1}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	report, err := c.FetchStatus(ctx)
	if err != nil {
		t.Fatalf("FetchStatus returned error: %v", err)
	}
	want := map[string]any{"a": json.Number("1")}
	if !reflect.DeepEqual(report.Root, want) {
		t.Fatalf("report = %#v, want %#v", report.Root, want)
	}
	if gotMethod != http.MethodGet || gotPeriod != "24h" {
		t.Fatalf("request = %s period=%q, want GET period=24h", gotMethod, gotPeriod)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want none", gotAuth)
	}
}

func TestClient_NestedDocument(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"services":[{"name":"relay-1","up":true,"latency":12.5}],"total":18446744073709551615,"note":null}` + "\n"))
	})

	report, err := c.FetchStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchStatus returned error: %v", err)
	}
	if report.Kind() != "object" {
		t.Fatalf("Kind() = %q, want object", report.Kind())
	}
	if got := report.Keys(); !reflect.DeepEqual(got, []string{"note", "services", "total"}) {
		t.Fatalf("Keys() = %v", got)
	}
	root := report.Root.(map[string]any)
	if root["total"] != json.Number("18446744073709551615") {
		t.Fatalf("total = %#v, want exact json.Number", root["total"])
	}
	services := root["services"].([]any)
	first := services[0].(map[string]any)
	if first["up"] != true || first["latency"] != json.Number("12.5") {
		t.Fatalf("service = %#v", first)
	}
}

func TestClient_NonSuccessStatusStillParsesBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"maintenance"}`))
	})

	report, err := c.FetchStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchStatus returned error: %v", err)
	}
	if got := report.Root.(map[string]any)["error"]; got != "maintenance" {
		t.Fatalf("error field = %#v, want maintenance", got)
	}
}

func TestClient_ParseErrors(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"malformed": "{not-json",
		"empty":     "",
		"trailing":  `{"a":1} {"b":2}`,
		"html":      "<html>502 Bad Gateway</html>",
	}
	for name, body := range bodies {
		body := body
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			_, err := c.FetchStatus(context.Background())
			assertKind(t, err, KindParse)
			if !strings.Contains(err.Error(), "parse response") {
				t.Fatalf("error = %q, want it to mention parse response", err)
			}
		})
	}
}

func TestClient_InvalidUTF8IsDecodeError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{'"', 0xff, 0xfe, '"'})
	})
	_, err := c.FetchStatus(context.Background())
	assertKind(t, err, KindDecode)
}

func TestClient_TruncatedBodyIsDecodeError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		_, _ = w.Write([]byte(`{"a":`))
	})
	_, err := c.FetchStatus(context.Background())
	assertKind(t, err, KindDecode)
}

func TestClient_UnreachableIsTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c := NewClient()
	c.url = addr + "/api/status?period=24h"
	_, err := c.FetchStatus(context.Background())
	assertKind(t, err, KindTransport)
}

func TestClient_TimeoutIsTransportError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	c := NewClient(WithTimeout(50 * time.Millisecond))
	c.url = server.URL
	_, err := c.FetchStatus(context.Background())
	assertKind(t, err, KindTransport)
}

func TestClient_NilClient(t *testing.T) {
	var c *Client
	_, err := c.FetchStatus(context.Background())
	assertKind(t, err, KindTransport)
}

type recordingTransport struct {
	got *http.Request
}

func (r *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r.got = req
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[true]`)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func TestClient_RequestsFixedStatusURL(t *testing.T) {
	rt := &recordingTransport{}
	c := NewClient(WithTransport(rt))

	report, err := c.FetchStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchStatus returned error: %v", err)
	}
	if rt.got == nil || rt.got.URL.String() != StatusURL {
		t.Fatalf("requested %v, want %s", rt.got.URL, StatusURL)
	}
	if len(rt.got.Header) != 0 {
		t.Fatalf("request headers = %v, want none", rt.got.Header)
	}
	if !reflect.DeepEqual(report.Root, []any{true}) {
		t.Fatalf("report = %#v, want [true]", report.Root)
	}
}
