// Drives the public SDK surface against an in-process mock of the Traceix
// service, covering every endpoint through the same transport stack
// production calls use.
package mock_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	traceix "github.com/perkinsfund/traceix-go"
)

// newMockService routes all nine endpoints and records what it saw.
func newMockService(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var seen []string
	mux := http.NewServeMux()
	record := func(path string, handler http.HandlerFunc) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("x-api-key") == "" {
				t.Errorf("%s: missing x-api-key", path)
			}
			seen = append(seen, r.URL.Path)
			handler(w, r)
		})
	}
	uploadHandler := func(result string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			mr, err := r.MultipartReader()
			if err != nil {
				t.Errorf("multipart: %v", err)
				http.Error(w, "bad form", http.StatusBadRequest)
				return
			}
			part, err := mr.NextPart()
			if err != nil {
				t.Errorf("form part: %v", err)
				http.Error(w, "bad form", http.StatusBadRequest)
				return
			}
			if part.FormName() != "file" {
				t.Errorf("form name = %q", part.FormName())
			}
			_, _ = io.Copy(io.Discard, part)
			_ = json.NewEncoder(w).Encode(map[string]string{"result": result, "uuid": "job-1"})
		}
	}
	echoJSON := func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(body)
	}
	record("/api/traceix/v1/upload", uploadHandler("prediction"))
	record("/api/traceix/v1/capa", uploadHandler("capa"))
	record("/api/traceix/v1/exif", uploadHandler("exif"))
	record("/api/v1/traceix/status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "done"})
	})
	record("/api/traceix/v1/capa/search", echoJSON)
	record("/api/traceix/v1/exif/search", echoJSON)
	record("/api/traceix/v1/ipfs/listall", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]any{map[string]any{"cid": "Qm123"}})
	})
	record("/api/traceix/v1/ipfs/search", echoJSON)
	record("/api/traceix/v1/ipfs/find", echoJSON)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &seen
}

func newClient(t *testing.T, srv *httptest.Server) *traceix.Client {
	t.Helper()
	c, err := traceix.New("mock-api-key", traceix.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_AnalysisFlow(t *testing.T) {
	srv, seen := newMockService(t)
	c := newClient(t, srv)
	ctx := context.Background()

	sample := filepath.Join(t.TempDir(), "sample.bin")
	if err := os.WriteFile(sample, []byte("MZ"), 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	res, err := c.FullUpload(ctx, sample)
	if err != nil {
		t.Fatalf("FullUpload: %v", err)
	}
	if obj := res.Prediction.(map[string]any); obj["result"] != "prediction" {
		t.Fatalf("prediction payload: %#v", res.Prediction)
	}
	if obj := res.Exif.(map[string]any); obj["result"] != "exif" {
		t.Fatalf("exif payload: %#v", res.Exif)
	}

	status, err := c.CheckStatus(ctx, "job-1")
	if err != nil {
		t.Fatalf("CheckStatus: %v", err)
	}
	if obj := status.(map[string]any); obj["status"] != "done" {
		t.Fatalf("status payload: %#v", status)
	}

	want := []string{
		"/api/traceix/v1/upload",
		"/api/traceix/v1/capa",
		"/api/traceix/v1/exif",
		"/api/v1/traceix/status",
	}
	if len(*seen) != len(want) {
		t.Fatalf("requests seen: %v", *seen)
	}
	for i, p := range want {
		if (*seen)[i] != p {
			t.Fatalf("request %d = %q, want %q", i, (*seen)[i], p)
		}
	}
}

func TestClient_SearchFlow(t *testing.T) {
	srv, _ := newMockService(t)
	c := newClient(t, srv)
	ctx := context.Background()

	for _, st := range []traceix.SearchType{traceix.SearchCapa, traceix.SearchExif} {
		got, err := c.HashSearch(ctx, "deadbeef", st)
		if err != nil {
			t.Fatalf("HashSearch(%v): %v", st, err)
		}
		if obj := got.(map[string]any); obj["sha256"] != "deadbeef" {
			t.Fatalf("search body echo: %#v", got)
		}
	}
}

func TestClient_IPFSFlow(t *testing.T) {
	srv, _ := newMockService(t)
	c := newClient(t, srv)
	ctx := context.Background()

	list, err := c.ListAllIPFSDatasets(ctx)
	if err != nil {
		t.Fatalf("ListAllIPFSDatasets: %v", err)
	}
	if entries := list.([]any); len(entries) != 1 {
		t.Fatalf("dataset list: %#v", list)
	}

	ds, err := c.GetPublicIPFSDataset(ctx, "Qm123")
	if err != nil {
		t.Fatalf("GetPublicIPFSDataset: %v", err)
	}
	if obj := ds.(map[string]any); obj["cid"] != "Qm123" {
		t.Fatalf("dataset body echo: %#v", ds)
	}

	found, err := c.SearchIPFSDatasetByHash(ctx, "deadbeef")
	if err != nil {
		t.Fatalf("SearchIPFSDatasetByHash: %v", err)
	}
	if obj := found.(map[string]any); obj["sha_hash"] != "deadbeef" {
		t.Fatalf("find body echo: %#v", found)
	}
}
