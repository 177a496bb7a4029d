package main

import "github.com/lovrop/codeforces-scraper/internal/cli"

func main() {
	cli.Execute()
}
