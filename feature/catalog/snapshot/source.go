package snapshot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"catalog-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source provides the raw bytes of a snapshot file.
type Source interface {
	// Open returns a reader over the snapshot contents.
	Open(ctx context.Context) (io.ReadCloser, error)
	// Name describes the source for logging.
	Name() string
}

// FileSource reads a snapshot from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	return f, nil
}

func (s FileSource) Name() string {
	return s.Path
}

// ObjectSource reads a snapshot delivered to object storage.
type ObjectSource struct {
	Client storage.Client
	Bucket string
	Object string
}

func (s ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	reader, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot object: %w", err)
	}
	return reader, nil
}

func (s ObjectSource) Name() string {
	return s.Bucket + "/" + s.Object
}

// Load reads the snapshot and returns its data rows in file order.
// The first line is the header; it is positional only and dropped without
// validation. Trailing empty lines are ignored.
func Load(ctx context.Context, src Source) ([]string, error) {
	reader, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	scanner := bufio.NewScanner(reader)
	// Allow long rows; the default 64KB token limit is enough for any sane
	// catalog row but buffer generously anyway.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows []string
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", src.Name(), err)
	}

	return rows, nil
}
