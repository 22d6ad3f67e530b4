// Package store persists transactions as comma-delimited text, one record per line.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/example/finance-tracker/pkg/transaction"
)

// ErrIO marks a failed read or write of the data file.
var ErrIO = errors.New("i/o failure")

// File reads and writes the full transaction set to a single path.
type File struct {
	fs   afero.Fs
	path string
	log  zerolog.Logger
}

// Option configures a File.
type Option func(*File)

// WithFs replaces the OS filesystem, mostly for tests.
func WithFs(fs afero.Fs) Option {
	return func(f *File) { f.fs = fs }
}

// WithLogger sets the logger used for skipped lines and write errors.
func WithLogger(log zerolog.Logger) Option {
	return func(f *File) { f.log = log }
}

// NewFile returns a store for path on the OS filesystem unless overridden.
func NewFile(path string, opts ...Option) *File {
	f := &File{
		fs:   afero.NewOsFs(),
		path: path,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With().Str("component", "store").Str("path", path).Logger()
	return f
}

// Path returns the data file location.
func (f *File) Path() string {
	return f.path
}

// Load reads every well-formed record. A missing file yields no records and
// no error. Lines without exactly four fields or with an unparseable amount
// are dropped.
func (f *File) Load() ([]transaction.Transaction, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, os.ErrNotExist) {
		f.log.Debug().Msg("data file not found, starting empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrIO, f.path, err)
	}

	var (
		ts      []transaction.Transaction
		skipped int
	)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		t, ok := parseLine(line)
		if !ok {
			skipped++
			f.log.Debug().Int("line", i+1).Msg("skipping malformed record")
			continue
		}
		ts = append(ts, t)
	}

	f.log.Debug().Int("loaded", len(ts)).Int("skipped", skipped).Msg("data file loaded")
	return ts, nil
}

// Save overwrites the data file with ts. The snapshot is written to a
// temporary file first and renamed into place.
func (f *File) Save(ts []transaction.Transaction) error {
	var buf bytes.Buffer
	for _, t := range ts {
		buf.WriteString(formatLine(t))
		buf.WriteByte('\n')
	}

	if dir := filepath.Dir(f.path); dir != "." && dir != "" {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return f.ioErr("save", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := afero.WriteFile(f.fs, tmp, buf.Bytes(), 0o644); err != nil {
		_ = f.fs.Remove(tmp)
		return f.ioErr("save", err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		_ = f.fs.Remove(tmp)
		return f.ioErr("save", err)
	}

	f.log.Debug().Int("saved", len(ts)).Msg("data file written")
	return nil
}

func (f *File) ioErr(op string, err error) error {
	f.log.Error().Err(err).Str("operation", op).Msg("data file i/o failed")
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, f.path, err)
}

func formatLine(t transaction.Transaction) string {
	return strings.Join([]string{t.Date, t.Description, t.Amount.String(), t.Category}, transaction.Delimiter)
}

func parseLine(line string) (transaction.Transaction, bool) {
	parts := strings.Split(line, transaction.Delimiter)
	if len(parts) != 4 {
		return transaction.Transaction{}, false
	}
	amount, err := transaction.ParseAmount(parts[2])
	if err != nil {
		return transaction.Transaction{}, false
	}
	return transaction.Transaction{
		Date:        parts[0],
		Description: parts[1],
		Amount:      amount,
		Category:    parts[3],
	}, true
}
