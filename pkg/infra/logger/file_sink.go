package logger

import (
	"bufio"
	"os"
	"path/filepath"
	"time"
)

const (
	sinkQueueDepth    = 512
	sinkFlushInterval = time.Second
)

// FileSink queues log lines and writes them to disk from a single
// goroutine, so request handlers never block on file I/O. When the
// queue is full the line is dropped instead of stalling the caller.
type FileSink struct {
	file    *os.File
	buf     *bufio.Writer
	lines   chan []byte
	done    chan struct{}
	drained chan struct{}
}

func NewFileSink(path string, bufferSize int) (*FileSink, error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	s := &FileSink{
		file:    file,
		buf:     bufio.NewWriterSize(file, bufferSize),
		lines:   make(chan []byte, sinkQueueDepth),
		done:    make(chan struct{}),
		drained: make(chan struct{}),
	}
	go s.run()

	return s, nil
}

func (s *FileSink) Write(p []byte) (int, error) {
	line := make([]byte, len(p))
	copy(line, p)

	select {
	case s.lines <- line:
	default:
	}
	return len(p), nil
}

func (s *FileSink) run() {
	defer close(s.drained)

	ticker := time.NewTicker(sinkFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case line := <-s.lines:
			if _, err := s.buf.Write(line); err != nil {
				os.Stderr.WriteString("log write failed: " + err.Error() + "\n")
			}
		case <-ticker.C:
			_ = s.buf.Flush()
		case <-s.done:
			for {
				select {
				case line := <-s.lines:
					_, _ = s.buf.Write(line)
				default:
					_ = s.buf.Flush()
					return
				}
			}
		}
	}
}

// Close drains queued lines, flushes the buffer and closes the file.
func (s *FileSink) Close() error {
	close(s.done)
	<-s.drained
	return s.file.Close()
}
