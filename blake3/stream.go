package blake3

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
)

// DefaultBufferSize is used by the streaming helpers when no
// WithBufferSize option is given.
const DefaultBufferSize = 256 * 1024

const maxEmptyReads = 8

// Progress reports streaming-hash progress to a ProgressFunc callback.
type Progress struct {
	Processed uint64
	Total     uint64
	Elapsed   time.Duration
}

// ProgressFunc receives Progress updates from WriteReader/HashReader/
// HashFile. It is passed only the Progress value, not the Hasher.
type ProgressFunc func(Progress)

// WriteReader streams data from r into the hasher, reporting progress. If
// total is unknown, pass 0.
func (h *Hasher) WriteReader(r io.Reader, total uint64, onProgress ProgressFunc, opts ...StreamOption) (int64, error) {
	cfg := newStreamConfig(opts)
	buf := make([]byte, cfg.bufferSize)
	logger := cfg.logger

	logger.Debug("blake3: streaming write started", zap.Uint64("total_bytes", total), zap.Int("buffer_size", len(buf)))

	start := time.Now()
	var processed uint64
	emptyReads := 0

	for {
		n, err := r.Read(buf)
		if n > 0 {
			emptyReads = 0
			_, _ = h.Write(buf[:n])
			processed += uint64(n)
			if onProgress != nil {
				onProgress(Progress{Processed: processed, Total: total, Elapsed: time.Since(start)})
			}
		}

		if err == io.EOF {
			if n == 0 && onProgress != nil {
				onProgress(Progress{Processed: processed, Total: total, Elapsed: time.Since(start)})
			}
			logger.Debug("blake3: streaming write finished", zap.Uint64("processed_bytes", processed), zap.Duration("elapsed", time.Since(start)))
			return int64(processed), nil
		}
		if err != nil {
			logger.Error("blake3: streaming write failed", zap.Error(err), zap.Uint64("processed_bytes", processed))
			return int64(processed), fmt.Errorf("blake3: reading input: %w", err)
		}
		if n == 0 {
			emptyReads++
			if emptyReads >= maxEmptyReads {
				logger.Error("blake3: streaming write made no progress", zap.Int("empty_reads", emptyReads))
				return int64(processed), fmt.Errorf("blake3: reading input: %w", io.ErrNoProgress)
			}
		}
	}
}

// HashReader streams a reader into a new Hasher and returns the 32-byte
// digest.
func HashReader(r io.Reader, onProgress ProgressFunc, opts ...StreamOption) ([OutLen]byte, error) {
	h := New()
	if _, err := h.WriteReader(r, 0, onProgress, opts...); err != nil {
		return [OutLen]byte{}, err
	}
	return h.Sum256(), nil
}

// HashFile streams a file into a new Hasher and reports progress against
// the file's known size.
func HashFile(path string, onProgress ProgressFunc, opts ...StreamOption) ([OutLen]byte, error) {
	cfg := newStreamConfig(opts)

	f, err := os.Open(path)
	if err != nil {
		cfg.logger.Error("blake3: opening file failed", zap.String("path", path), zap.Error(err))
		return [OutLen]byte{}, fmt.Errorf("blake3: opening %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return [OutLen]byte{}, fmt.Errorf("blake3: statting %q: %w", path, err)
	}
	total := uint64(info.Size())

	h := New()
	if _, err := h.WriteReader(f, total, onProgress, opts...); err != nil {
		return [OutLen]byte{}, err
	}
	return h.Sum256(), nil
}
