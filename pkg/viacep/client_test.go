package viacep

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func stubClient(status int, body string, capture *string) *Client {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if capture != nil {
			*capture = req.URL.String()
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{},
		}, nil
	})
	return NewClient(WithBaseURL("http://cep.test/ws/"), WithHTTPClient(&http.Client{Transport: rt}))
}

func TestLookupResolved(t *testing.T) {
	var url string
	body := `{"cep":"01310-930","logradouro":"Avenida Paulista","complemento":"2100","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP","ibge":"3550308"}`
	client := stubClient(http.StatusOK, body, &url)

	addr, err := client.Lookup(context.Background(), "01310930")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if url != "http://cep.test/ws/01310930/json/" {
		t.Fatalf("unexpected URL %q", url)
	}
	if addr.Street != "Avenida Paulista" || addr.Neighborhood != "Bela Vista" || addr.City != "São Paulo" || addr.State != "SP" {
		t.Fatalf("unexpected address %+v", addr)
	}
}

func TestLookupNotFound(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bool flag", http.StatusOK, `{"erro": true}`},
		{"string flag", http.StatusOK, `{"erro": "true"}`},
		{"bad request", http.StatusBadRequest, `<html></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stubClient(tt.status, tt.body, nil).Lookup(context.Background(), "99999999")
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestLookupFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ``},
		{"bad json", http.StatusOK, `{"cep":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stubClient(tt.status, tt.body, nil).Lookup(context.Background(), "01310930")
			if err == nil || errors.Is(err, ErrNotFound) {
				t.Fatalf("expected transport failure, got %v", err)
			}
		})
	}
}

func TestLookupAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/20040020/json/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"cep":"20040-020","logradouro":"Rua da Assembleia","bairro":"Centro","localidade":"Rio de Janeiro","uf":"RJ","erro":false}`)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL+"/ws"), WithHTTPClient(srv.Client()))
	addr, err := client.Lookup(context.Background(), "20040020")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if addr.City != "Rio de Janeiro" {
		t.Fatalf("unexpected city %q", addr.City)
	}
}

func TestWithTimeoutDoesNotMutateCallerClient(t *testing.T) {
	shared := &http.Client{}
	client := NewClient(WithHTTPClient(shared), WithTimeout(3*time.Second))

	if shared.Timeout != 0 {
		t.Fatalf("caller client mutated: %v", shared.Timeout)
	}
	if client.httpClient.Timeout != 3*time.Second {
		t.Fatalf("timeout not applied: %v", client.httpClient.Timeout)
	}
}
