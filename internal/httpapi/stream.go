package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/araport/goannot/internal/export"
)

// streamChunks drains chunker into w, flushing after each chunk so a long
// result does not wait for the whole body to buffer before the client sees
// any bytes.
func streamChunks[T any](w http.ResponseWriter, chunker *export.Chunker[T], log *zap.Logger) {
	flusher, canFlush := w.(http.Flusher)
	for {
		chunk, err := chunker.Next()
		if err == export.Done {
			return
		}
		if err != nil {
			log.Warn("streaming export chunk failed", zap.Error(err))
			return
		}
		if _, werr := w.Write(chunk); werr != nil {
			return
		}
		if canFlush {
			flusher.Flush()
		}
	}
}
