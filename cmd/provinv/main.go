// Command provinv builds a CSV inventory of medical-provider profile
// pages: it fetches each URL from the input list, asks a language
// model to extract a fixed schema of provider fields, and writes one
// CSV row per successfully processed URL.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/provinv"
	provcsv "github.com/fwojciec/provinv/csv"
	"github.com/fwojciec/provinv/gemini"
	provquery "github.com/fwojciec/provinv/goquery"
	"github.com/fwojciec/provinv/htmltomarkdown"
	provhttp "github.com/fwojciec/provinv/http"
	"github.com/fwojciec/provinv/openai"
	"github.com/fwojciec/provinv/pipeline"
	"github.com/fwojciec/provinv/sqlite"
	"github.com/fwojciec/provinv/trafilatura"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Completer overrides the backend selection when set.
	// Used by end-to-end tests.
	Completer provinv.Completer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("provinv"),
		kong.Description("Create a CSV inventory of medical-provider profile pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Load URLs. Failure here is fatal: there is nothing to do.
	urls, err := ReadURLs(cli.URLFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Found %d URLs to process\n", len(urls))

	p := &pipeline.Pipeline{
		MetaLastModified: provquery.LastModified,
		MaxContentBytes:  cli.MaxContent,
	}

	fetcher := provhttp.NewFetcher(provhttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()
	p.Fetcher = fetcher

	if !cli.Raw {
		p.Extractor = trafilatura.NewExtractor()
		p.Converter = htmltomarkdown.NewConverter()
	}

	if cli.RPS > 0 {
		p.Limiter = rate.NewLimiter(rate.Limit(cli.RPS), 1)
	}

	if cli.Cache != "" {
		db := sqlite.NewDB(cli.Cache)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open page cache at %q: %w", cli.Cache, err)
		}
		defer db.Close()
		p.Cache = sqlite.NewPageCache(db)
	}

	p.Completer = m.Completer
	if p.Completer == nil {
		p.Completer, err = newCompleter(ctx, cli, stderr)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, "\nProcessing provider profiles...")
	fmt.Fprintln(stdout, separator)

	result, err := p.Run(ctx, urls, func(event pipeline.ProgressEvent) {
		if line := formatProgress(event); line != "" {
			fmt.Fprintln(stdout, line)
		}
	})
	if err != nil {
		return err
	}

	// Write the inventory before judging the run: even a bad run
	// leaves a well-formed (possibly empty) CSV behind.
	if err := provcsv.WriteInventoryFile(cli.OutputCSV, result.Records); err != nil {
		return err
	}

	printSummary(stdout, cli.OutputCSV, result)

	if result.AllFailed() {
		return fmt.Errorf("all %d URLs failed", result.Stats.Total)
	}
	return nil
}

// newCompleter wires the configured extraction backend.
func newCompleter(ctx context.Context, cli *CLI, stderr io.Writer) (provinv.Completer, error) {
	switch cli.Backend {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, cli.Model), nil
	default:
		return openai.NewCompleter(
			openai.WithEndpoint(cli.Endpoint),
			openai.WithModel(cli.Model),
			openai.WithAPIKey(cli.APIKey),
		), nil
	}
}

const separator = "======================================================================"

// formatProgress renders one human-readable status line per resolved
// URL. Start and finish events produce no line; the surrounding
// banners cover those.
func formatProgress(event pipeline.ProgressEvent) string {
	switch event.Type {
	case pipeline.ProgressCompleted:
		return fmt.Sprintf("[%3d/%3d] (%5.1f%%) ✓ %s",
			event.Completed, event.Total, percent(event.Completed, event.Total), event.URL)
	case pipeline.ProgressFailed:
		return fmt.Sprintf("[%3d/%3d] (%5.1f%%) ✗ %s (%s)",
			event.Completed, event.Total, percent(event.Completed, event.Total), event.URL,
			provinv.ErrorMessage(event.Err))
	default:
		return ""
	}
}

func percent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// printSummary writes the end-of-run report: counters, success rate,
// output location and the failure list.
func printSummary(w io.Writer, outputPath string, result *pipeline.Result) {
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "PROCESSING COMPLETE")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Total URLs processed: %d\n", result.Stats.Total)
	fmt.Fprintf(w, "Successful extractions: %d\n", result.Stats.Succeeded)
	fmt.Fprintf(w, "Failed extractions: %d\n", result.Stats.Failed)
	fmt.Fprintf(w, "Success rate: %.1f%%\n", result.Stats.SuccessRate()*100)
	fmt.Fprintf(w, "Output written to: %s\n", outputPath)

	if summary := provcsv.FormatFailures(result.Failures); summary != "" {
		fmt.Fprintln(w, "")
		fmt.Fprint(w, summary)
	}
}
