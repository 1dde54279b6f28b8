package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tetratelabs/wazero"

	datcodec "github.com/wippyai/datcodec"
	"github.com/wippyai/datcodec/errors"
)

var (
	_ datcodec.Source = Bytes(nil)
	_ datcodec.Source = (*File)(nil)
	_ datcodec.Source = (*Memory)(nil)
)

// memoryModule is a wasm module that exports one page of memory as "memory".
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Stats.dat")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	if f.Size() != 10 {
		t.Errorf("Size = %d, want 10", f.Size())
	}
	if f.Name() != path {
		t.Errorf("Name = %q", f.Name())
	}
	buf := make([]byte, 3)
	if _, err := f.ReadAt(buf, 4); err != nil || string(buf) != "456" {
		t.Errorf("ReadAt = %q, %v", buf, err)
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Open(filepath.Join(dir, "missing.dat")); !errors.IsKind(err, errors.KindInvalidData) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := Open(dir); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Errorf("directory: %v", err)
	}
}

func TestWasmMemory(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, memoryModule)
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}
	mem := mod.ExportedMemory("memory")
	if mem == nil {
		t.Fatal("memory not exported")
	}
	if !mem.Write(100, []byte("datcodec")) {
		t.Fatal("write failed")
	}

	whole := WasmMemory(mem)
	if whole.Size() != 65536 {
		t.Errorf("Size = %d, want one page", whole.Size())
	}

	sec, err := whole.Section(100, 8)
	if err != nil {
		t.Fatalf("Section failed: %v", err)
	}
	buf := make([]byte, 8)
	if n, err := sec.ReadAt(buf, 0); n != 8 || err != nil || string(buf) != "datcodec" {
		t.Errorf("ReadAt = %d, %q, %v", n, buf, err)
	}

	n, err := sec.ReadAt(buf, 4)
	if n != 4 || err != io.EOF || string(buf[:4]) != "odec" {
		t.Errorf("partial ReadAt = %d, %q, %v", n, buf[:n], err)
	}
	if _, err := sec.ReadAt(buf, 8); err != io.EOF {
		t.Errorf("ReadAt at end = %v", err)
	}
	if _, err := whole.Section(65530, 8); !errors.IsKind(err, errors.KindUnexpectedEOF) {
		t.Errorf("oversized section: %v", err)
	}
}
