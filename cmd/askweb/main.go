package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/askweb/askweb"
	"github.com/askweb/askweb/firecrawl"
	"github.com/askweb/askweb/gemini"
	"github.com/askweb/askweb/goquery"
	"github.com/askweb/askweb/ollama"
	"github.com/askweb/askweb/rag"
	"github.com/askweb/askweb/scrape"
	askwebslog "github.com/askweb/askweb/slog"
	"github.com/askweb/askweb/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService askweb.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("askweb"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'askweb --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The server logs at info; one-shot commands only surface problems.
	if cmd == "serve" {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ASKWEB_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Pipeline = newPipeline(deps, cli.Scrape.Concurrency)

	// The ask, reindex, and serve commands need the model backend; scrape
	// and stats must work without one.
	if cmd == "ask" || cmd == "reindex" || cmd == "serve" {
		embedder, generator, err := newModelBackend(ctx, stderr)
		if err != nil {
			return err
		}

		deps.Cache = rag.NewCache(&rag.Builder{
			Documents: deps.Documents,
			Embedder:  embedder,
			Logger:    deps.Logger,
		})
		deps.Asker = &rag.Asker{
			Documents: deps.Documents,
			Embedder:  embedder,
			Source:    deps.Cache,
			Generator: generator,
			TopK:      cli.Ask.TopK,
		}
	}

	return kongCtx.Run(deps)
}

// newPipeline wires the extraction fallback chain. The Firecrawl stages are
// only registered when an API key is configured; the local stage always runs
// last.
func newPipeline(deps *Dependencies, concurrency int) *scrape.Pipeline {
	var stages []askweb.Stage

	client := firecrawl.NewClient(firecrawl.Config{
		APIKey:  os.Getenv("FIRECRAWL_API_KEY"),
		BaseURL: os.Getenv("FIRECRAWL_BASE_URL"),
	})
	if client.Available() {
		mode := os.Getenv("FIRECRAWL_MODE")
		stages = append(stages,
			askwebslog.NewLoggingStage(firecrawl.NewReaderStage(client, mode), deps.Logger),
			askwebslog.NewLoggingStage(firecrawl.NewScrapeStage(client), deps.Logger),
		)
	}
	stages = append(stages, askwebslog.NewLoggingStage(goquery.NewStage(), deps.Logger))

	return &scrape.Pipeline{
		Stages:      stages,
		Documents:   deps.Documents,
		Limiter:     rate.NewLimiter(1, 2),
		Logger:      deps.Logger,
		Concurrency: concurrency,
	}
}

// newModelBackend builds the embedder and generator pair. Ollama is the
// default; set LLM_BACKEND=gemini to use the Gemini API instead.
func newModelBackend(ctx context.Context, stderr io.Writer) (askweb.Embedder, askweb.Generator, error) {
	switch backend := os.Getenv("LLM_BACKEND"); backend {
	case "", "ollama":
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		embedder := ollama.NewEmbedder(ollama.EmbedConfig{
			BaseURL: baseURL,
			Model:   os.Getenv("OLLAMA_EMBED_MODEL"),
		})
		generator := ollama.NewGenerator(ollama.GenerateConfig{
			BaseURL: baseURL,
			Model:   os.Getenv("OLLAMA_MODEL"),
		})
		return embedder, generator, nil

	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewEmbedder(client, os.Getenv("GEMINI_EMBED_MODEL")),
			gemini.NewGenerator(client, os.Getenv("GEMINI_MODEL")), nil

	default:
		return nil, nil, fmt.Errorf("unknown LLM_BACKEND %q (use \"ollama\" or \"gemini\")", backend)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("ASKWEB_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "askweb.db"
	}
	dir := filepath.Join(home, ".askweb")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "askweb.db")
}
