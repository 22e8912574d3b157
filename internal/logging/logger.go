// Package logging configures the process-wide zerolog logger.
//
// Logs always go to stderr, since stdout carries the MCP protocol. File
// output is optional and rotated by lumberjack.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var mu sync.Mutex

// Config controls logger output.
type Config struct {
	Level     string `env:"FLOOR_MCP_LOG_LEVEL,info"`
	ToFile    bool   `env:"FLOOR_MCP_LOG_TO_FILE,false"`
	Dir       string `env:"FLOOR_MCP_LOG_DIR,./logs"`
	FileName  string `env:"FLOOR_MCP_LOG_FILE,floor-mcp"`
	Formatted bool   `env:"FLOOR_MCP_LOG_FORMATTED,true"`
	MaxSizeMB int    `env:"FLOOR_MCP_LOG_MAX_SIZE,10"`
	MaxFiles  int    `env:"FLOOR_MCP_LOG_MAX_FILES,5"`
}

const timeFormat = "2006-01-02 15:04:05.000"

// consoleWriter wraps zerolog.ConsoleWriter to satisfy zerolog.LevelWriter.
type consoleWriter struct {
	zerolog.ConsoleWriter
}

// WriteLevel reports len(p) rather than the bytes ConsoleWriter wrote, since
// the human-readable line differs in length from the JSON entry and zerolog
// treats a mismatch as a short write.
func (c consoleWriter) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	_, err := c.ConsoleWriter.Write(p)
	return len(p), err
}

// fileWriter wraps a rotating file. With Formatted set it writes one
// human-readable line per entry instead of raw JSON.
type fileWriter struct {
	out       io.Writer
	formatted bool
}

func (f fileWriter) Write(p []byte) (int, error) {
	return f.out.Write(p)
}

func (f fileWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if !f.formatted {
		return f.out.Write(p)
	}
	line, err := formatLogEntry(level, p)
	if err != nil {
		return f.out.Write(p)
	}
	_, err = io.WriteString(f.out, line)
	return len(p), err
}

// formatLogEntry turns one zerolog JSON entry into a single text line.
func formatLogEntry(level zerolog.Level, p []byte) (string, error) {
	var entry map[string]interface{}
	if err := json.Unmarshal(p, &entry); err != nil {
		return "", err
	}

	timestamp, _ := entry["time"].(string)
	message, _ := entry["message"].(string)
	caller, _ := entry["caller"].(string)

	return fmt.Sprintf("%s | %-5s | %-20s | %s | %s\n",
		timestamp,
		level.String(),
		caller,
		message,
		strings.Join(extraFields(entry), " "),
	), nil
}

// extraFields returns sorted key=value pairs for non-standard fields.
func extraFields(entry map[string]interface{}) []string {
	var extras []string
	for k, v := range entry {
		switch k {
		case "time", "message", "level", "caller":
			continue
		}
		extras = append(extras, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(extras)
	return extras
}

// shortCaller turns "pkg/sub/file.go" into "file".
func shortCaller(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, ".go")
}

// New builds a logger writing to console and, if cfg.ToFile is set, to a
// rotating file under cfg.Dir. The returned closer releases the file.
func New(cfg Config, console io.Writer) (zerolog.Logger, io.Closer, error) {
	writers := []io.Writer{consoleWriter{ConsoleWriter: zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: timeFormat,
		NoColor:    true,
	}}}

	var closer io.Closer = nopCloser{}
	if cfg.ToFile {
		lj, err := newFileLogger(cfg)
		if err != nil {
			return zerolog.Logger{}, nil, err
		}
		writers = append(writers, fileWriter{out: lj, formatted: cfg.Formatted})
		closer = lj
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

// Init installs a logger built from cfg as the global zerolog logger, writing
// its console output to stderr.
func Init(cfg Config) (io.Closer, error) {
	zerolog.TimeFieldFormat = timeFormat
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return fmt.Sprintf("%s:%d", shortCaller(file), line)
	}

	logger, closer, err := New(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	log.Logger = logger.With().Caller().Logger()
	mu.Unlock()
	return closer, nil
}

// Get returns the current global logger.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log.Logger
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return parsed
}

// newFileLogger creates the log directory, trims old files and opens a
// lumberjack logger named by date so runs on the same day share a file.
func newFileLogger(cfg Config) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := deleteOldLogFiles(cfg.Dir, cfg.MaxFiles); err != nil {
		return nil, fmt.Errorf("failed to clean old log files: %w", err)
	}

	name := fmt.Sprintf("%s_%s.log", cfg.FileName, time.Now().Format("2006-01-02"))
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: 3,
		MaxAge:     30,
	}, nil
}

// deleteOldLogFiles keeps the newest maxFiles *.log files in dir.
func deleteOldLogFiles(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type logFile struct {
		name    string
		modTime time.Time
	}
	var files []logFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{name: e.Name(), modTime: info.ModTime()})
	}
	if len(files) <= maxFiles {
		return nil
	}

	// Oldest first so we can trim from the front
	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})
	for _, f := range files[:len(files)-maxFiles] {
		if err := os.Remove(filepath.Join(dir, f.name)); err != nil {
			return err
		}
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
