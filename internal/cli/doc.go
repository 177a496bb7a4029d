// Package cli implements the command-line interface for codeforces-scraper.
//
// The cli package wires the fetcher, the contest and problem extractors and
// the storage writer into the scrape pipeline: fetch the contest page, list
// its problems, then download and extract every problem on a bounded worker
// pool. Per-problem failures are reported individually and turn into a
// non-zero exit without stopping the other downloads.
package cli
