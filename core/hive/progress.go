package hive

import "io"

// ProgressFunc receives transfer progress. It is invoked once per chunk
// with the number of bytes moved in that chunk and the total transfer size.
// total is -1 when the size is unknown. Callbacks run on the transfer
// goroutine, so they must be fast and must not block.
type ProgressFunc func(delta, total int64)

// progressReader invokes fn with byte increments as the wrapped reader is
// consumed. Used for uploads, where the SDK pulls from the source file.
type progressReader struct {
	r     io.Reader
	total int64
	fn    ProgressFunc
}

func newProgressReader(r io.Reader, total int64, fn ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, fn: fn}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.fn(int64(n), p.total)
	}
	return n, err
}

// progressWriter invokes fn with byte increments as data is written through
// to the wrapped writer. Used for downloads.
type progressWriter struct {
	w     io.Writer
	total int64
	fn    ProgressFunc
}

func newProgressWriter(w io.Writer, total int64, fn ProgressFunc) *progressWriter {
	return &progressWriter{w: w, total: total, fn: fn}
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	if n > 0 {
		p.fn(int64(n), p.total)
	}
	return n, err
}
