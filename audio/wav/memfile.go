package wav

import (
	"errors"
	"io"
)

// memFile is an in-memory io.WriteSeeker. The encoder seeks back to patch
// chunk sizes after the sample data is written.
type memFile struct {
	buf []byte
	pos int
}

func (m *memFile) Write(p []byte) (int, error) {
	if end := m.pos + len(p); end > len(m.buf) {
		if end > cap(m.buf) {
			grown := make([]byte, end, max(end, 2*cap(m.buf)))
			copy(grown, m.buf)
			m.buf = grown
		} else {
			m.buf = m.buf[:end]
		}
	}
	n := copy(m.buf[m.pos:], p)
	m.pos += n
	return n, nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(m.pos)
	case io.SeekEnd:
		base = int64(len(m.buf))
	default:
		return 0, errors.New("wav: invalid whence")
	}
	next := base + offset
	if next < 0 {
		return 0, errors.New("wav: negative seek position")
	}
	m.pos = int(next)
	return next, nil
}

func (m *memFile) Bytes() []byte { return m.buf }
