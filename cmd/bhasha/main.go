// Command bhasha translates text between languages using the offline
// translation pipeline, with an optional AI model fallback.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/openlexica/bhasha"
	"github.com/openlexica/bhasha/cache"
	"github.com/openlexica/bhasha/processor"
	"github.com/openlexica/bhasha/provider"
	"github.com/openlexica/bhasha/reorder"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = bhasha.Version
	commit    = bhasha.GitCommit
	buildDate = bhasha.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bhasha", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	fromLang := fs.String("from", "english", "Source language name or code")
	toLang := fs.String("to", "", "Target language name or code")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	htmlMode := fs.Bool("html", false, "Treat input as HTML and translate text nodes")
	chatMode := fs.Bool("chat", false, "Chat mode: render sender and receiver views")
	apiKey := fs.String("api-key", "", "OpenAI API key for model fallback (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model for fallback")
	cacheTTL := fs.Int("cache-ttl", 3600, "Cache TTL in seconds (0 to disable)")
	listLangs := fs.Bool("languages", false, "List supported languages")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	dryRun := fs.Bool("dry-run", false, "Show tokenization without translating")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", bhasha.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	if *listLangs {
		return runListLanguages(stdout, *jsonOutput)
	}

	if *toLang == "" {
		fs.Usage()
		return fmt.Errorf("--to is required")
	}

	// Get input
	var input string
	var inputName string

	if fs.NArg() == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
		inputName = "stdin"
	} else {
		inputPath := fs.Arg(0)
		data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		input = string(data)
		inputName = filepath.Base(inputPath)
	}

	if *dryRun {
		return runDryRun(input, inputName, *fromLang, *toLang, stdout, *jsonOutput)
	}

	// Build engine options
	opts := []bhasha.EngineOption{}

	if *cacheTTL > 0 {
		opts = append(opts, bhasha.WithCache(cache.NewMemoryCache(*cacheTTL, 10000)))
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key != "" {
		p := provider.NewOpenAIProvider(provider.OpenAIConfig{
			APIKey: key,
			Model:  *model,
		})
		retryable := bhasha.NewRetryableProvider(p, bhasha.DefaultRetryConfig())
		opts = append(opts, bhasha.WithModelProvider(retryable))
	}

	e := bhasha.NewEngine(opts...)

	if !*quiet {
		fmt.Fprintf(stderr, "Translating %s from %s to %s...\n", inputName, *fromLang, *toLang)
	}

	start := time.Now()
	out := io.Writer(stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	ctx := context.Background()

	switch {
	case *chatMode:
		views, err := e.TranslateForChat(ctx, input, *fromLang, *toLang)
		if err != nil {
			return fmt.Errorf("chat translation failed: %w", err)
		}
		if *jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		}
		fmt.Fprintf(out, "Sender view:   %s\n", views.SenderView)
		fmt.Fprintf(out, "Receiver view: %s\n", views.ReceiverView)
		fmt.Fprintf(out, "English core:  %s\n", views.EnglishCore)
		fmt.Fprintf(out, "Path:          %s\n", views.Path)
	case *htmlMode:
		result, err := processor.TranslateHTML(ctx, e, input, *fromLang, *toLang)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		fmt.Fprint(out, result)
	default:
		// Per-line segments: blank lines, URLs and indentation survive
		// translation untouched.
		proc := processor.NewTextProcessor()
		parsed, nodes, err := proc.Extract(input)
		if err != nil {
			return fmt.Errorf("extracting segments: %w", err)
		}

		texts := make([]string, len(nodes))
		for i, n := range nodes {
			texts[i] = n.Text
		}
		results, err := e.TranslateBatch(ctx, texts, *fromLang, *toLang)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}

		translations := make(map[string]string, len(nodes))
		for i, n := range nodes {
			translations[n.Hash] = results[i].Text
		}
		content, err := proc.Apply(parsed, nodes, translations)
		if err != nil {
			return fmt.Errorf("applying translations: %w", err)
		}

		if *jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(translateOutput{
				Content:  content,
				Segments: results,
			})
		}
		fmt.Fprintln(out, content)
		if !*quiet {
			fmt.Fprintf(stderr, "\nDone in %v\n", time.Since(start).Round(time.Millisecond))
			fmt.Fprintf(stderr, "  Segments:    %d\n", len(results))
			if len(results) == 1 {
				fmt.Fprintf(stderr, "  Method:      %s\n", results[0].Method)
				fmt.Fprintf(stderr, "  Confidence:  %.2f\n", results[0].Confidence)
				if results[0].Pivot != "" {
					fmt.Fprintf(stderr, "  Pivot:       %s\n", results[0].Pivot)
				}
				if len(results[0].UnknownWords) > 0 {
					fmt.Fprintf(stderr, "  Unknown:     %v\n", results[0].UnknownWords)
				}
			}
		}
	}

	return nil
}

// translateOutput is the JSON shape of a document translation: the stitched
// content plus the per-segment results.
type translateOutput struct {
	Content  string                      `json:"content"`
	Segments []*bhasha.TranslationResult `json:"segments"`
}

// runDryRun shows the tokenization of the input without translating.
func runDryRun(input, inputName, fromLang, toLang string, stdout io.Writer, jsonOut bool) error {
	tokens := reorder.Tokenize(input)

	if jsonOut {
		type dryRunOutput struct {
			InputFile  string          `json:"input_file"`
			SourceLang string          `json:"source_lang"`
			TargetLang string          `json:"target_lang"`
			TokenCount int             `json:"token_count"`
			Tokens     []reorder.Token `json:"tokens"`
		}

		words := 0
		for _, tok := range tokens {
			if tok.IsWord {
				words++
			}
		}

		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dryRunOutput{
			InputFile:  inputName,
			SourceLang: fromLang,
			TargetLang: toLang,
			TokenCount: words,
			Tokens:     tokens,
		})
	}

	fmt.Fprintf(stdout, "Dry run: %s (%s -> %s)\n\n", inputName, fromLang, toLang)
	i := 0
	for _, tok := range tokens {
		if !tok.IsWord {
			continue
		}
		i++
		fmt.Fprintf(stdout, "%3d. %q", i, tok.Text)
		if tok.POS != "" {
			fmt.Fprintf(stdout, "  pos=%s", tok.POS)
		}
		if tok.Lemma != "" && tok.Lemma != tok.Normalized {
			fmt.Fprintf(stdout, "  lemma=%s", tok.Lemma)
		}
		fmt.Fprintln(stdout)
	}

	return nil
}

// runListLanguages prints the language registry.
func runListLanguages(stdout io.Writer, jsonOut bool) error {
	registry := bhasha.NewEngine().Registry()
	names := registry.Languages()
	sort.Strings(names)

	if jsonOut {
		type langOutput struct {
			Name   string `json:"name"`
			Code   string `json:"code"`
			Script string `json:"script"`
			Order  string `json:"word_order"`
		}

		langs := make([]langOutput, 0, len(names))
		for _, name := range names {
			p := registry.Profile(name)
			langs = append(langs, langOutput{
				Name:   p.Name,
				Code:   p.Code,
				Script: p.Script,
				Order:  string(p.Order),
			})
		}

		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(langs)
	}

	for _, name := range names {
		p := registry.Profile(name)
		fmt.Fprintf(stdout, "%-16s %-4s %-12s %s\n", p.Name, p.Code, p.Script, p.Order)
	}
	return nil
}
