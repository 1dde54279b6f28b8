package transcoder

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCapBytes  = 64 << 10
	poolInitCapBytes = 128
)

// byte buffer pool for collecting UTF-16 code units
var unitBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCapBytes)
		return &buf
	},
}

func getUnitBuf() *[]byte {
	return unitBufPool.Get().(*[]byte)
}

func putUnitBuf(buf *[]byte) {
	if buf == nil || cap(*buf) > poolMaxCapBytes {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	unitBufPool.Put(buf)
}
