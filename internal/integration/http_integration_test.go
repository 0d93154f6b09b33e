package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/awmpietro/algoviz/internal/app"
	"github.com/awmpietro/algoviz/internal/observability"
	"github.com/awmpietro/algoviz/internal/transport/httptransport"
)

func newSolveServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc := app.NewService(app.WithObserver(observability.NewCollector(reg)))
	h := httptransport.NewHandler(svc, httptransport.WithMaxBodyBytes(64<<10))

	mux := http.NewServeMux()
	h.Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := httptest.NewServer(h.Middleware(mux))
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Steps []struct {
		Type        string         `json:"type"`
		Description string         `json:"description"`
		Data        map[string]any `json:"data"`
	} `json:"steps"`
	ResultValue   float64 `json:"result_value"`
	SelectedItems []int   `json:"selected_items"`
	Metrics       struct {
		TimeTaken       float64 `json:"time_taken"`
		SpaceComplexity string  `json:"space_complexity"`
		TimeComplexity  string  `json:"time_complexity"`
		StepCount       int     `json:"step_count"`
	} `json:"metrics"`
}

func post(srv *httptest.Server, path, body string) (int, []byte, error) {
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	return resp.StatusCode, b, err
}

func solve(t *testing.T, srv *httptest.Server, path, body string) envelope {
	t.Helper()
	status, raw, err := post(srv, path, body)
	if err != nil {
		t.Fatalf("post %s failed: %v", path, err)
	}
	if status != http.StatusOK {
		t.Fatalf("post %s: expected 200, got %d: %s", path, status, raw)
	}
	var out envelope
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if out.Metrics.StepCount != len(out.Steps) {
		t.Fatalf("%s: step_count %d != %d steps", path, out.Metrics.StepCount, len(out.Steps))
	}
	if out.SelectedItems == nil {
		t.Fatalf("%s: selected_items must be an array, got null", path)
	}
	return out
}

func TestHTTPSolve_Scenarios(t *testing.T) {
	srv := newSolveServer(t)

	cases := []struct {
		path, body string
		value      float64
	}{
		{"/solve/coin-change/dp", `{"amount":11,"coins":[1,2,5]}`, 3},
		{"/solve/coin-change/greedy", `{"amount":11,"coins":[1,2,5]}`, 3},
		{"/solve/coin-change/dp", `{"amount":6,"coins":[1,3,4]}`, 2},
		{"/solve/coin-change/greedy", `{"amount":6,"coins":[1,3,4]}`, 3},
		{"/solve/knapsack/dp", `{"capacity":5,"items":[{"id":1,"weight":4,"value":10},{"id":2,"weight":2,"value":6}]}`, 10},
		{"/solve/knapsack/greedy", `{"capacity":5,"items":[{"id":1,"weight":4,"value":10},{"id":2,"weight":2,"value":6}]}`, 6},
		{"/solve/kruskals", `{"graph":{"A":{"B":1,"C":4},"B":{"C":2,"D":5},"C":{"D":1}}}`, 4},
		{"/solve/prims", `{"graph":{"A":{"B":1,"C":4},"B":{"C":2,"D":5},"C":{"D":1}},"start_node":"A"}`, 4},
		{"/solve/dijkstra", `{"graph":{"A":{"B":1,"C":4},"B":{"C":2,"D":5},"C":{"D":1}},"start_node":"A"}`, 4},
		{"/solve/matrix-chain/dp", `{"dimensions":[10,30,5,60]}`, 4500},
		{"/solve/lcs", `{"text1":"ABCBDAB","text2":"BDCABA"}`, 4},
		{"/solve/edit-distance", `{"text1":"kitten","text2":"sitting"}`, 3},
		{"/solve/lis", `{"sequence":[10,9,2,5,3,7,101,18]}`, 4},
		{"/solve/rod-cutting", `{"length":8,"prices":[1,5,8,9,10,17,17,20]}`, 22},
		{"/solve/huffman", `{"text":"aaaabbc"}`, 10},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			out := solve(t, srv, tc.path, tc.body)
			if out.ResultValue != tc.value {
				t.Fatalf("expected %v, got %v", tc.value, out.ResultValue)
			}
			if len(out.Steps) == 0 || out.Steps[0].Type == "" {
				t.Fatalf("expected a non-empty typed trace")
			}
		})
	}
}

func TestHTTPSolve_ErrorStatuses(t *testing.T) {
	srv := newSolveServer(t)

	cases := []struct {
		path, body string
		status     int
		contains   string
	}{
		{"/solve/bogosort", `{}`, http.StatusNotFound, "unknown algorithm"},
		{"/solve/knapsack/fractional", `{}`, http.StatusBadRequest, "Unknown algorithm type"},
		{"/solve/knapsack", `{}`, http.StatusBadRequest, "algorithm type is required"},
		{"/solve/matrix-chain/greedy", `{}`, http.StatusBadRequest, "Matrix Chain optimization is a DP problem."},
		{"/solve/lis/dp", `{}`, http.StatusBadRequest, ""},
		{"/solve/lis", `{"sequence":`, http.StatusBadRequest, "invalid json"},
		{"/solve/lis", `{"sequence":[1],"oops":1}`, http.StatusBadRequest, "oops"},
		{"/solve/coin-change/dp", `{"amount":-1,"coins":[1]}`, http.StatusBadRequest, "amount failed gte=0"},
		{"/solve/rod-cutting", `{"length":2000,"prices":[` + strings.Repeat("1,", 1999) + `1]}`, http.StatusBadRequest, "trace cells"},
		{"/solve/lis", `{"sequence":[` + strings.Repeat("1,", 40<<10) + `1]}`, http.StatusRequestEntityTooLarge, ""},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			status, raw, err := post(srv, tc.path, tc.body)
			if err != nil {
				t.Fatal(err)
			}
			if status != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, status, raw)
			}
			var out map[string]any
			if err := json.Unmarshal(raw, &out); err != nil {
				t.Fatalf("error body is not json: %s", raw)
			}
			if out["error"] == nil {
				t.Fatalf("expected error field, got %s", raw)
			}
			if tc.contains != "" && !strings.Contains(string(raw), tc.contains) {
				t.Fatalf("expected %q in body, got %s", tc.contains, raw)
			}
		})
	}
}

func TestHTTPSolve_Liveness(t *testing.T) {
	srv := newSolveServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get(httptransport.RequestIDHeader) == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestHTTPSolve_MetricsExposed(t *testing.T) {
	srv := newSolveServer(t)
	solve(t, srv, "/solve/lis", `{"sequence":[1,2]}`)
	_, _, _ = post(srv, "/solve/bogosort", `{}`)

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	for _, want := range []string{
		`algoviz_solve_total{family="lis",outcome="ok",variant=""} 1`,
		`algoviz_solve_total{family="bogosort",outcome="unknown_route",variant=""} 1`,
		`algoviz_trace_steps_count{family="lis",variant=""} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, body)
		}
	}
}

func TestHTTPSolve_ConcurrentRequests(t *testing.T) {
	srv := newSolveServer(t)

	const n = 80
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			amount := 6 + i%5
			status, raw, err := post(srv, "/solve/coin-change/dp", fmt.Sprintf(`{"amount":%d,"coins":[1,3,4]}`, amount))
			if err != nil {
				errs <- err
				return
			}
			if status != http.StatusOK {
				errs <- fmt.Errorf("status %d: %s", status, raw)
				return
			}
			var out envelope
			if err := json.Unmarshal(raw, &out); err != nil {
				errs <- err
				return
			}
			sum := 0
			for _, c := range out.SelectedItems {
				sum += c
			}
			if sum != amount || float64(len(out.SelectedItems)) != out.ResultValue {
				errs <- fmt.Errorf("amount %d: inconsistent result %v %v", amount, out.ResultValue, out.SelectedItems)
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}
