package transcoder

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"

	"github.com/wippyai/datcodec/errors"
)

func le32(v int32) []byte {
	return binary.LittleEndian.AppendUint32(nil, uint32(v))
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func newTestCursor(data []byte) *Cursor {
	return NewCursor(bytes.NewReader(data))
}

func newTestDecoder(policy HeapPolicy) *Decoder {
	return NewDecoder(NewHeap(), 0, policy)
}

func asError(err error, target **errors.Error) bool {
	return stderrors.As(err, target)
}
