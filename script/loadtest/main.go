package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
)

// Scenario is one API call the load test can make
type Scenario struct {
	Name   string
	Method string
	Path   string
	Body   any
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

type loadOptions struct {
	concurrency   int
	totalRequests int
	baseURL       string
	delay         time.Duration
	webinarID     string
}

var scenarios = []Scenario{
	{Name: "upcoming", Method: http.MethodGet, Path: "/api/webinars/upcoming"},
	{Name: "past", Method: http.MethodGet, Path: "/api/webinars/past?q=graphql"},
	{Name: "next", Method: http.MethodGet, Path: "/api/webinars/next?tz=Europe/London"},
	{Name: "webinar", Method: http.MethodGet, Path: "/api/webinars/%s"},
	{Name: "webinar-link", Method: http.MethodGet, Path: "/api/webinars/%s/calendar/apple"},
	{Name: "countdown", Method: http.MethodGet, Path: "/api/countdown"},
	{Name: "datetime", Method: http.MethodGet, Path: "/api/format/datetime?at=2025-01-23T19:00:00Z&tz=Asia/Tokyo"},
	{Name: "relative", Method: http.MethodGet, Path: "/api/format/relative?at=2025-01-20T09:30:00Z"},
	{Name: "timezones", Method: http.MethodGet, Path: "/api/timezones"},
	{Name: "calendar-link", Method: http.MethodPost, Path: "/api/calendar-links", Body: map[string]any{
		"title":           "Load test session",
		"start":           "2025-01-23T19:00:00Z",
		"durationMinutes": 45,
		"provider":        "google",
	}},
}

func main() {
	opts := &loadOptions{}

	cmd := &cobra.Command{
		Use:   "load-test",
		Short: "Fire a mix of webinar hub API requests and report latency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			run(cmd.OutOrStdout(), opts)
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 5, "number of concurrent workers")
	cmd.Flags().IntVarP(&opts.totalRequests, "requests", "n", 100, "total number of requests")
	cmd.Flags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "base URL of the API")
	cmd.Flags().DurationVar(&opts.delay, "delay", 100*time.Millisecond, "pause before each request per worker")
	cmd.Flags().StringVar(&opts.webinarID, "webinar", "react", "webinar id used by the per-webinar scenarios")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, opts *loadOptions) {
	fmt.Fprintf(out, "Load testing %s with %d scenarios\n", opts.baseURL, len(scenarios))
	fmt.Fprintf(out, "Concurrency: %d workers, %d requests, %v delay\n", opts.concurrency, opts.totalRequests, opts.delay)

	stats := &TestStats{
		TotalRequests: opts.totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, opts.totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, opts.totalRequests)
	jobs := make(chan int, opts.totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < opts.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(opts, jobs, results)
		}()
	}

	for i := 0; i < opts.totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[result.Scenario]++
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				stats.ErrorCounts[fmt.Sprintf("%s: %v", result.Scenario, result.Error)]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()

	ticker := time.NewTicker(time.Second)
	stopProgress := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				stats.Lock.Lock()
				completed := stats.SuccessfulRequests + stats.FailedRequests
				stats.Lock.Unlock()
				fmt.Fprintf(out, "Progress: %d/%d requests completed\n", completed, stats.TotalRequests)
			case <-stopProgress:
				return
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()
	close(stopProgress)

	stats.TotalTime = time.Since(startTime)
	printResults(out, stats)
}

func worker(opts *loadOptions, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if opts.delay > 0 {
			time.Sleep(opts.delay)
		}
		results <- call(client, opts, scenarios[rand.IntN(len(scenarios))])
	}
}

func call(client *http.Client, opts *loadOptions, s Scenario) TestResult {
	result := TestResult{Scenario: s.Name}

	path := s.Path
	if strings.Contains(path, "%s") {
		path = fmt.Sprintf(path, opts.webinarID)
	}

	var body io.Reader
	if s.Body != nil {
		data, err := json.Marshal(s.Body)
		if err != nil {
			result.Error = err
			return result
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(s.Method, opts.baseURL+path, body)
	if err != nil {
		result.Error = err
		return result
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Error = err
		return result
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(out io.Writer, stats *TestStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	fmt.Fprintln(out, "\n================= TEST RESULTS =================")
	fmt.Fprintf(out, "Total Requests:      %d\n", stats.TotalRequests)
	fmt.Fprintf(out, "Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Fprintf(out, "Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Fprintf(out, "Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Fprintf(out, "Successful RPS:      %.2f\n", rps)

	fmt.Fprintln(out, "\n----------------- RESPONSE TIMES -----------------")
	if len(sorted) > 0 {
		fmt.Fprintf(out, "Average: %v  Min: %v  Max: %v\n", avg, sorted[0], sorted[len(sorted)-1])
	}
	fmt.Fprintf(out, "P50: %v  P90: %v  P95: %v  P99: %v\n",
		percentile(sorted, 50), percentile(sorted, 90), percentile(sorted, 95), percentile(sorted, 99))

	fmt.Fprintln(out, "\n----------------- SCENARIOS -----------------")
	names := make([]string, 0, len(stats.ScenarioStats))
	for name := range stats.ScenarioStats {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(out, "%-15s %d\n", name, stats.ScenarioStats[name])
	}

	if stats.FailedRequests > 0 {
		fmt.Fprintln(out, "\n----------------- ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Fprintf(out, "%-50s %d\n", msg, count)
		}
	}
}
