package source

import (
	"io"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/datcodec/errors"
)

// Memory reads a window of a wasm module's linear memory. Guests that stage
// .dat tables in their memory can be decoded without copying them out.
type Memory struct {
	mem  api.Memory
	off  uint32
	size int64
}

// WasmMemory exposes the whole of mem as it is sized now. Memory grown later
// is not visible.
func WasmMemory(mem api.Memory) *Memory {
	return &Memory{mem: mem, size: int64(mem.Size())}
}

// Section returns the window [off, off+n) of m.
func (m *Memory) Section(off uint32, n uint32) (*Memory, error) {
	if int64(off)+int64(n) > m.size {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnexpectedEOF).
			Detail("section offset=%d length=%d exceeds memory of %d bytes", off, n, m.size).
			Build()
	}
	return &Memory{mem: m.mem, off: m.off + off, size: int64(n)}, nil
}

func (m *Memory) Size() int64 { return m.size }

func (m *Memory) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.InvalidInput(errors.PhaseDecode, "negative offset")
	}
	if off >= m.size {
		return 0, io.EOF
	}
	n := min(int64(len(p)), m.size-off)
	data, ok := m.mem.Read(m.off+uint32(off), uint32(n))
	if !ok {
		return 0, errors.New(errors.PhaseDecode, errors.KindUnexpectedEOF).
			Detail("read out of bounds: offset=%d, length=%d", int64(m.off)+off, n).
			Build()
	}
	copy(p, data)
	if n < int64(len(p)) {
		return int(n), io.EOF
	}
	return int(n), nil
}
