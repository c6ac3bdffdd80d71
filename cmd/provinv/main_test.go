package main_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/provinv"
	main "github.com/fwojciec/provinv/cmd/provinv"
	"github.com/fwojciec/provinv/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "provinv")
	assert.Contains(t, stdout.String(), "url-file")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MissingURLFile(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope.txt")
	output := filepath.Join(t.TempDir(), "out.csv")

	err := m.Run(context.Background(), []string{missing, output}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestMain_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/providers/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("<html><body><h1>Dr. Example</h1><p>Cardiology</p></body></html>"))
	}))
	defer srv.Close()

	urls := []string{
		srv.URL + "/providers/alice",
		srv.URL + "/providers/broken",
		srv.URL + "/providers/bob",
	}

	dir := t.TempDir()
	urlFile := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(urlFile, []byte(strings.Join(urls, "\n")+"\n"), 0o644))
	output := filepath.Join(dir, "out.csv")

	m := main.NewMain()
	m.Completer = &mock.Completer{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			return `{"Name": "Dr. Example", "Specialty": "Cardiology"}`, nil
		},
	}

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{urlFile, output, "--rps=0"}, &stdout, &stderr)
	require.NoError(t, err)

	// One row per successful URL, in input order.
	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, provinv.Columns(), rows[0])

	profileURLCol := indexOf(t, provinv.Columns(), "Profile URL")
	nameCol := indexOf(t, provinv.Columns(), "Name")
	assert.Equal(t, urls[0], rows[1][profileURLCol])
	assert.Equal(t, urls[2], rows[2][profileURLCol])
	assert.Equal(t, "Dr. Example", rows[1][nameCol])

	out := stdout.String()
	assert.Contains(t, out, "Found 3 URLs to process")
	assert.Contains(t, out, "PROCESSING COMPLETE")
	assert.Contains(t, out, "Successful extractions: 2")
	assert.Contains(t, out, "Failed extractions: 1")
	assert.Contains(t, out, "Failed URLs:")
	assert.Contains(t, out, urls[1])
}

func TestMain_Run_AllFailed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	urlFile := filepath.Join(dir, "urls.txt")
	content := srv.URL + "/providers/a\n" + srv.URL + "/providers/b\n"
	require.NoError(t, os.WriteFile(urlFile, []byte(content), 0o644))
	output := filepath.Join(dir, "out.csv")

	m := main.NewMain()
	m.Completer = &mock.Completer{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			t.Fatal("completer should not be called when every fetch fails")
			return "", nil
		},
	}

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{urlFile, output, "--rps=0"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 URLs failed")

	// The inventory file is still written, header only.
	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, provinv.Columns(), rows[0])
}

func TestMain_Run_CacheReusesPages(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body><h1>Dr. Cached</h1></body></html>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	urlFile := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(urlFile, []byte(srv.URL+"/providers/a\n"), 0o644))
	cachePath := filepath.Join(dir, "pages.db")

	run := func(output string) {
		m := main.NewMain()
		m.Completer = &mock.Completer{
			CompleteFn: func(ctx context.Context, prompt string) (string, error) {
				return `{"Name": "Dr. Cached"}`, nil
			},
		}
		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{urlFile, output, "--rps=0", "--cache=" + cachePath}, &stdout, &stderr)
		require.NoError(t, err)
	}

	run(filepath.Join(dir, "out1.csv"))
	run(filepath.Join(dir, "out2.csv"))

	assert.Equal(t, int64(1), hits.Load())
}

func indexOf(t *testing.T, columns []string, name string) int {
	t.Helper()
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	t.Fatalf("column %q not found", name)
	return -1
}
