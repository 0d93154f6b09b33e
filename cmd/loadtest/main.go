package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

type result struct {
	latency time.Duration
	status  int
	err     error
}

type report struct {
	requests, ok, non2xx, errs int
	avg, p50, p90, p99         time.Duration
	achievedRPS                float64
}

func main() {
	base := flag.String("base", "http://localhost:8080", "API base URL")
	family := flag.String("family", "knapsack", "algorithm family")
	variant := flag.String("variant", "dp", "algorithm variant, empty for single-variant families")
	size := flag.String("size", "small", "sample body size: small or large")
	seed := flag.Uint64("seed", 1, "seed for large sample bodies")
	rps := flag.Int("rps", 50, "target requests per second")
	duration := flag.Duration("duration", 60*time.Second, "test duration")
	workers := flag.Int("workers", 50, "number of concurrent workers")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP client timeout")
	maxP90 := flag.Duration("max-p90", 30*time.Millisecond, "P90 latency budget")
	flag.Parse()

	if *rps <= 0 || *duration <= 0 || *workers <= 0 {
		fmt.Fprintln(os.Stderr, "rps, duration and workers must be > 0")
		os.Exit(2)
	}

	body, err := sampleBody(*family, *size, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	url := strings.TrimSuffix(*base, "/") + "/solve/" + *family
	if *variant != "" {
		url += "/" + *variant
	}

	client := &http.Client{Timeout: *timeout}
	results := fire(context.Background(), client, url, body, *rps, *workers, *duration)
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no requests executed")
		os.Exit(1)
	}
	r := summarize(results, *duration)

	fmt.Printf("Load test finished\n")
	fmt.Printf("- endpoint: %s (%s body, %d bytes)\n", url, *size, len(body))
	fmt.Printf("- target_rps: %d\n", *rps)
	fmt.Printf("- achieved_rps: %.2f\n", r.achievedRPS)
	fmt.Printf("- duration: %s\n", duration.String())
	fmt.Printf("- requests: %d\n", r.requests)
	fmt.Printf("- 2xx: %d\n", r.ok)
	fmt.Printf("- non_2xx: %d\n", r.non2xx)
	fmt.Printf("- errors: %d\n", r.errs)
	fmt.Printf("- avg_ms: %.3f\n", ms(r.avg))
	fmt.Printf("- p50_ms: %.3f\n", ms(r.p50))
	fmt.Printf("- p90_ms: %.3f\n", ms(r.p90))
	fmt.Printf("- p99_ms: %.3f\n", ms(r.p99))

	if r.achievedRPS >= float64(*rps)*0.98 && r.p90 < *maxP90 && r.errs == 0 && r.non2xx == 0 {
		fmt.Printf("PASS: meets %d RPS and P90 < %s\n", *rps, maxP90.String())
		return
	}
	fmt.Println("FAIL: does not meet target (or has request errors)")
	os.Exit(1)
}

// fire issues one request per tick until d elapses. Each worker keeps its
// own results; they are merged once every worker is done.
func fire(ctx context.Context, client *http.Client, url string, body []byte, rps, workers int, d time.Duration) []result {
	jobs := make(chan struct{}, workers)
	perWorker := make([][]result, workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				perWorker[w] = append(perWorker[w], post(ctx, client, url, body))
			}
		}()
	}

	ticker := time.NewTicker(time.Second / time.Duration(rps))
	defer ticker.Stop()
	deadline := time.Now().Add(d)
	for now := range ticker.C {
		if now.After(deadline) {
			break
		}
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()

	return slices.Concat(perWorker...)
}

func post(ctx context.Context, client *http.Client, url string, body []byte) result {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return result{latency: time.Since(start), err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return result{latency: time.Since(start), err: err}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return result{latency: time.Since(start), status: resp.StatusCode}
}

func summarize(results []result, d time.Duration) report {
	r := report{requests: len(results)}
	latencies := make([]time.Duration, 0, len(results))
	var total time.Duration
	for _, res := range results {
		latencies = append(latencies, res.latency)
		total += res.latency
		switch {
		case res.err != nil:
			r.errs++
		case res.status >= 200 && res.status < 300:
			r.ok++
		default:
			r.non2xx++
		}
	}
	slices.Sort(latencies)

	if n := len(latencies); n > 0 {
		r.avg = total / time.Duration(n)
		r.p50 = percentile(latencies, 50)
		r.p90 = percentile(latencies, 90)
		r.p99 = percentile(latencies, 99)
	}
	r.achievedRPS = float64(len(results)) / d.Seconds()
	return r
}

// percentile expects sorted input.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[(len(sorted)-1)*p/100]
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
