package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pathtrace/pathtrace/pkg/catalog"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	ts := httptest.NewServer(New(catalog.Default(), logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s status = %d, want %d\n%s", url, resp.StatusCode, wantStatus, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func TestListGraphs(t *testing.T) {
	ts := newTestServer(t)

	var got []GraphSummary
	getJSON(t, ts.URL+"/api/graphs", http.StatusOK, &got)

	if len(got) != 5 {
		t.Fatalf("got %d graphs, want 5", len(got))
	}
	names := make([]string, len(got))
	for i, g := range got {
		names[i] = g.Name
	}
	if !slices.Contains(names, "CampusMap") {
		t.Errorf("listing %v is missing CampusMap", names)
	}
	for _, g := range got {
		if g.NodeCount == 0 || g.EdgeCount == 0 {
			t.Errorf("%s reports empty shape: %+v", g.Name, g)
		}
	}
}

func TestGetGraphDetail(t *testing.T) {
	ts := newTestServer(t)

	var got GraphDetail
	getJSON(t, ts.URL+"/api/graphs/CampusMap", http.StatusOK, &got)

	if got.Name != "CampusMap" {
		t.Errorf("Name = %q, want CampusMap", got.Name)
	}
	if len(got.Nodes) != 10 {
		t.Errorf("got %d nodes, want 10", len(got.Nodes))
	}
	gate, ok := got.Adjacency["Gate"]
	if !ok {
		t.Fatal("adjacency is missing Gate")
	}
	if len(gate) != 2 {
		t.Errorf("Gate has %d neighbors, want 2", len(gate))
	}
	if _, ok := got.Positions["Library"]; !ok {
		t.Error("positions are missing Library")
	}
}

func TestGetGraphUnknown(t *testing.T) {
	ts := newTestServer(t)

	var got struct {
		Code string `json:"code"`
	}
	getJSON(t, ts.URL+"/api/graphs/Atlantis", http.StatusNotFound, &got)

	if got.Code != "UNKNOWN_GRAPH" {
		t.Errorf("code = %q, want UNKNOWN_GRAPH", got.Code)
	}
}

func TestSearch(t *testing.T) {
	ts := newTestServer(t)

	var got SearchResponse
	getJSON(t, ts.URL+"/api/search?graph=CampusMap&algorithm=bfs&start=Gate&goal=Hostel", http.StatusOK, &got)

	if got.RunID == "" {
		t.Error("RunID is empty")
	}
	if got.Algorithm != "bfs" || got.Start != "Gate" || got.Goal != "Hostel" {
		t.Errorf("request echo wrong: %+v", got)
	}
	if got.Result.Distance == 0 || len(got.Result.Path) == 0 {
		t.Errorf("no path in result: %+v", got.Result)
	}
	if got.Result.Path[0].String() != "Gate" {
		t.Errorf("path starts at %s, want Gate", got.Result.Path[0])
	}
}

func TestSearchDefaultsToBFS(t *testing.T) {
	ts := newTestServer(t)

	var got SearchResponse
	getJSON(t, ts.URL+"/api/search?graph=Ladder-10&start=L0&goal=R4", http.StatusOK, &got)

	if got.Algorithm != "bfs" {
		t.Errorf("Algorithm = %q, want bfs by default", got.Algorithm)
	}
}

func TestSearchCellNodes(t *testing.T) {
	ts := newTestServer(t)

	url := ts.URL + "/api/search?graph=UrbanGrid-6x6&algorithm=astar&start=(0,%200)&goal=(5,%205)"
	var got SearchResponse
	getJSON(t, url, http.StatusOK, &got)

	if got.Start != "(0, 0)" || got.Goal != "(5, 5)" {
		t.Errorf("cell echo wrong: start=%q goal=%q", got.Start, got.Goal)
	}
	if len(got.Result.Path) == 0 {
		t.Error("no path across the grid")
	}
}

func TestSearchErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{"unknown graph", "graph=Atlantis&start=A&goal=B", http.StatusNotFound, "UNKNOWN_GRAPH"},
		{"bad algorithm", "graph=CampusMap&algorithm=dijkstra&start=Gate&goal=Hostel", http.StatusBadRequest, "INVALID_ALGORITHM"},
		{"bad start", "graph=CampusMap&start=Nowhere&goal=Hostel", http.StatusBadRequest, "INVALID_NODE"},
		{"bad goal", "graph=CampusMap&start=Gate&goal=Nowhere", http.StatusBadRequest, "INVALID_NODE"},
		{"empty start", "graph=CampusMap&goal=Hostel", http.StatusBadRequest, "INVALID_NODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			}
			getJSON(t, ts.URL+"/api/search?"+tt.query, tt.wantStatus, &got)

			if got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}
