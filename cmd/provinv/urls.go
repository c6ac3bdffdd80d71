package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadURLs loads the URL list from path: UTF-8 text, one URL per
// line, blank lines ignored. Order is preserved; it defines the
// output row order.
func ReadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read URL file %q: %w", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read URL file %q: %w", path, err)
	}

	return urls, nil
}
