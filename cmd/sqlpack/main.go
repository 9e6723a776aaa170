// ABOUTME: Entry point for the sqlpack server and CLI
// ABOUTME: Serves the database tool pack over MCP and runs one-shot queries from the shell

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/2389/sqlpack/internal/config"
	"github.com/2389/sqlpack/internal/mcp"
	"github.com/2389/sqlpack/internal/store"
	"github.com/2389/sqlpack/internal/tools"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
             _                     _
 ___   __ _ | | _ __    __ _   ___| | __
/ __| / _' || || '_ \  / _' | / __| |/ /
\__ \| (_| || || |_) || (_| || (__|   <
|___/ \__, ||_|| .__/  \__,_| \___|_|\_\
          |_|   |_|
`

// getConfigPath returns the path to the sqlpack config file.
// Priority: SQLPACK_CONFIG env var > ./sqlpack.yaml > XDG_CONFIG_HOME/sqlpack/config.yaml
func getConfigPath() string {
	if envPath := os.Getenv("SQLPACK_CONFIG"); envPath != "" {
		return envPath
	}

	if _, err := os.Stat("sqlpack.yaml"); err == nil {
		return "sqlpack.yaml"
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "sqlpack.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "sqlpack", "config.yaml")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx, os.Args[2:])
	case "init":
		err = runInit(os.Args[2:])
	case "query":
		err = runQuery(ctx, os.Args[2:])
	case "info":
		err = runInfo(ctx, os.Args[2:])
	case "health":
		err = runHealth(ctx, os.Args[2:])
	case "version":
		fmt.Printf("sqlpack %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: sqlpack <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve          Start the MCP server")
	fmt.Println("  init           Create the database and seed demo data")
	fmt.Println("  query \"SQL\"    Run a SQL statement against the database")
	fmt.Println("  info           Show schema and sample rows for every table")
	fmt.Println("  health         Check server health")
	fmt.Println("  version        Print version")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --config PATH  Config file (default: sqlpack.yaml search chain)")
	fmt.Println("  --db PATH      Database file (overrides config)")
	fmt.Println("  --json         JSON output for query and info")
}

// cliFlags holds the flags shared across subcommands.
type cliFlags struct {
	configPath string
	dbPath     string
	jsonOut    bool
	rest       []string
}

// parseFlags parses subcommand arguments.
// Supports both "--flag value" and "--flag=value" formats.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--config requires a value")
			}
			f.configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			f.configPath = strings.TrimPrefix(arg, "--config=")
		case arg == "--db":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--db requires a value")
			}
			f.dbPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--db="):
			f.dbPath = strings.TrimPrefix(arg, "--db=")
		case arg == "--json":
			f.jsonOut = true
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown flag: %s", arg)
		default:
			f.rest = append(f.rest, arg)
		}
	}
	return f, nil
}

// resolveConfig loads configuration from the explicit flag path or the default
// search chain, falling back to built-in defaults when no file exists. The
// returned label names the config source for startup output.
func (f *cliFlags) resolveConfig() (*config.Config, string, error) {
	path := f.configPath
	if path == "" {
		path = getConfigPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			cfg := config.Default()
			if f.dbPath != "" {
				cfg.Database.Path = f.dbPath
			}
			return cfg, "(defaults)", nil
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if f.dbPath != "" {
		cfg.Database.Path = f.dbPath
	}
	return cfg, path, nil
}

func runServe(ctx context.Context, args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	// Version info
	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, configLabel, err := flags.resolveConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	// Startup info
	green := color.New(color.FgGreen)

	green.Print("    ▶ ")
	fmt.Printf("Config:    %s\n", configLabel)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:      %s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Database:  %s\n", cfg.Database.Path)
	fmt.Println()

	logger.Info("starting sqlpack",
		"config", configLabel,
		"http_addr", cfg.Server.HTTPAddr,
		"database", cfg.Database.Path,
	)

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	svc := tools.NewService(st, cfg.Tools.SampleRows, logger)
	mcpServer, err := mcp.NewServer(mcp.Config{
		Pack:   tools.NewPack(svc),
		Logger: logger.With("component", "mcp"),
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if _, err := st.Tables(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mcpServer.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		logger.Info("context canceled, initiating shutdown")
	case serverErr = <-errCh:
		logger.Error("server error", "error", serverErr)
	}

	// The run context is already canceled at this point, so shutdown gets a
	// fresh context with a timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	shutdownErr := httpServer.Shutdown(shutdownCtx)

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// handleHealth returns 200 OK if the server is alive.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func runInit(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, _, err := flags.resolveConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer st.Close()

	green := color.New(color.FgGreen)
	green.Printf("  ✓ Database: %s\n", cfg.Database.Path)
	fmt.Println("Database initialized with sample data.")
	return nil
}

func runQuery(ctx context.Context, args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(flags.rest) != 1 {
		return fmt.Errorf("usage: sqlpack query [--json] [--db PATH] \"SQL\"")
	}
	query := flags.rest[0]

	cfg, _, err := flags.resolveConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	if flags.jsonOut {
		// JSON mode emits the same envelope the MCP tool returns, engine
		// errors included.
		svc := tools.NewService(st, cfg.Tools.SampleRows, nil)
		resp := svc.ExecuteQuery(ctx, query)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	result, err := st.Execute(ctx, query)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	if !result.Select {
		fmt.Printf("%d row(s) affected\n", result.Affected)
		return nil
	}

	if err := writeRows(os.Stdout, result.Columns, result.Rows); err != nil {
		return err
	}
	fmt.Printf("(%d rows)\n", len(result.Rows))
	return nil
}

func runInfo(ctx context.Context, args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, _, err := flags.resolveConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	svc := tools.NewService(st, cfg.Tools.SampleRows, nil)
	info, err := svc.DatabaseInfo(ctx)
	if err != nil {
		return err
	}

	if flags.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	tables := make([]string, 0, len(info.Schema))
	for table := range info.Schema {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	cyan := color.New(color.FgCyan)
	for _, table := range tables {
		cyan.Println(table)

		tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for _, col := range info.Schema[table] {
			var attrs []string
			if col.PrimaryKey {
				attrs = append(attrs, "PRIMARY KEY")
			}
			if col.NotNull {
				attrs = append(attrs, "NOT NULL")
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", col.Name, col.Type, strings.Join(attrs, " "))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if rows := info.SampleData[table]; len(rows) > 0 {
			fmt.Println()
			cols := make([]string, len(info.Schema[table]))
			for i, col := range info.Schema[table] {
				cols[i] = col.Name
			}
			if err := writeRows(os.Stdout, cols, rows); err != nil {
				return err
			}
		}
		fmt.Println()
	}
	return nil
}

func runHealth(ctx context.Context, args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, _, err := flags.resolveConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	url := fmt.Sprintf("http://%s/health", cfg.Server.HTTPAddr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	fmt.Println("healthy")
	return nil
}

// writeRows renders rows as an aligned table with a header line. Column order
// follows the columns slice, not map iteration.
func writeRows(w io.Writer, columns []string, rows []store.Row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, row := range rows {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = formatValue(row[col])
		}
		fmt.Fprintln(tw, strings.Join(values, "\t"))
	}
	return tw.Flush()
}

// formatValue renders a single cell for table output.
func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = &colorHandler{
			level: level,
		}
	}

	return slog.New(handler)
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	// Format timestamp
	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	// Colorize level
	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	// Print message
	buf.WriteString(r.Message)

	// Print handler-level attrs first (from WithAttrs)
	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	// Print record attrs
	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Print(buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}
