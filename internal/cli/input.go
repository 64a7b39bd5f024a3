package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const stdinName = "-"

// maxLine bounds a single SMILES line; large biopolymers run to a few
// hundred kilobytes.
const maxLine = 4 << 20

// record is one non-blank input line.
type record struct {
	source string
	line   int // 1-based
	text   string
}

func (r record) String() string {
	return fmt.Sprintf("%s:%d", r.source, r.line)
}

// zstdReadCloser gives a zstd decoder the io.ReadCloser shape; closing it
// releases the decoder and then the underlying file.
type zstdReadCloser struct {
	*zstd.Decoder
	file io.Closer
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}

// open returns a reader for path: stdin for "-", a zstd stream for names
// ending in ".zst", the plain file otherwise.
func open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == stdinName {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: %w", err)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("cli: %s: %w", path, err)
	}
	return zstdReadCloser{Decoder: dec, file: f}, nil
}

// readRecords collects the non-blank lines of every path in order. No paths
// means stdin.
func readRecords(paths []string, stdin io.Reader) ([]record, error) {
	if len(paths) == 0 {
		paths = []string{stdinName}
	}
	var out []record
	for _, path := range paths {
		rc, err := open(path, stdin)
		if err != nil {
			return nil, err
		}
		out, err = scan(out, path, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scan(out []record, source string, r io.Reader) ([]record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, record{source: source, line: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cli: reading %s: %w", source, err)
	}
	return out, nil
}
