package cli

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lovrop/codeforces-scraper/internal/contest"
	"github.com/lovrop/codeforces-scraper/internal/fetch"
	"github.com/lovrop/codeforces-scraper/internal/markup"
	"github.com/lovrop/codeforces-scraper/internal/problem"
	"github.com/lovrop/codeforces-scraper/internal/storage"
)

// Result is the outcome of one problem download.
type Result struct {
	ProblemID string
	Title     string
	Examples  int
	Err       error
}

// run executes the scrape pipeline: contest page, problem list, then the
// per-problem downloads on a bounded worker pool. A contest-page failure
// aborts the run; per-problem failures are collected and reported, and any
// failure makes the returned error non-nil.
func run(contestURI string, workers int, client *fetch.Client, writer *storage.Writer, out *reporter) error {
	out.Progressf("Retrieving %s ... ", contestURI)
	page, err := client.Get(contestURI)
	if err != nil {
		out.Println("failed.")
		return fmt.Errorf("fetching contest page: %w", err)
	}
	out.Printlnf("OK (%d bytes).", len(page))

	if title := contest.Title(string(page)); title != "" {
		out.Verbosef("Contest: %s", title)
	}

	ids, err := contest.ProblemIDs(string(page))
	if err != nil {
		return fmt.Errorf("parsing contest page: %w", err)
	}
	out.Printlnf("Found %d problems.", len(ids))

	results := scrapeProblems(contestURI, ids, workers, client, writer, out)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			out.Errorf("problem %s: %v", r.ProblemID, r.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d problems failed", failed, len(ids))
	}
	return nil
}

// scrapeProblems fans the problem IDs out over a fixed number of workers
// and collects one Result per problem. Results come back sorted by problem
// ID so reporting is deterministic.
func scrapeProblems(contestURI string, ids []string, workers int, client *fetch.Client, writer *storage.Writer, out *reporter) []Result {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string, len(ids))
	resultCh := make(chan Result, len(ids))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				resultCh <- scrapeProblem(contestURI, id, client, writer, out)
			}
		}()
	}

	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()
	close(resultCh)

	results := make([]Result, 0, len(ids))
	for r := range resultCh {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ProblemID < results[j].ProblemID
	})
	return results
}

// scrapeProblem downloads one problem page, extracts its samples and
// writes them out. All failure modes land in Result.Err.
func scrapeProblem(contestURI, id string, client *fetch.Client, writer *storage.Writer, out *reporter) Result {
	res := Result{ProblemID: id}

	uri := contestURI + "/problem/" + id
	out.Printlnf("Retrieving %s ...", uri)
	page, err := client.Get(uri)
	if err != nil {
		res.Err = fmt.Errorf("fetching problem page: %w", err)
		return res
	}
	out.Printlnf("Retrieved problem %s (%d bytes).", id, len(page))

	examples, err := problem.Extract(string(page))
	if err != nil {
		// Dump the page for diagnosis before surfacing a parse error.
		var pe *markup.ParseError
		if errors.As(err, &pe) {
			out.Dump(problem.Repair(string(page)))
		}
		res.Err = fmt.Errorf("extracting samples: %w", err)
		return res
	}

	res.Title = problem.Title(string(page))
	if res.Title != "" {
		out.Verbosef("Problem %s: %s", id, res.Title)
	}

	n, err := writer.WriteExamples(id, examples)
	if err != nil {
		res.Err = fmt.Errorf("writing examples: %w", err)
		return res
	}
	res.Examples = n
	out.Printlnf("Wrote %d examples for problem %s.", n, id)
	return res
}
