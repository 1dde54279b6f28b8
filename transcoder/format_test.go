package transcoder

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	r := NewRegistry()
	data := cat(le32(4), le32(2), le32(12), le32(20), le32(30), EncodeString("ab"), EncodeString("c"))

	v, err := newTestDecoder(HeapReuse).Decode(r.MustResolve("ref|list|ref|string"), newTestCursor(data), true)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	var b strings.Builder
	if err := Format(&b, v); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	want := "-> @4 ref|string[2] @12\n" +
		"  [0] -> @20 \"ab\" @20\n" +
		"  [1] -> @30 \"c\" @30\n"
	if b.String() != want {
		t.Errorf("Format =\n%s\nwant\n%s", b.String(), want)
	}
}

func TestFormatRecord(t *testing.T) {
	r := NewRegistry()
	l := statsLayout(t, r)
	row := cat(le32(0), le32(-3), le32(0), le32(0), []byte{1})
	data := cat(row, EncodeString("Q"))

	rec, err := NewSession(r, 17).DecodeRecord(l, newTestCursor(data), 0)
	if err != nil {
		t.Fatalf("DecodeRecord failed: %v", err)
	}

	var b strings.Builder
	if err := FormatRecord(&b, rec); err != nil {
		t.Fatalf("FormatRecord failed: %v", err)
	}
	for _, want := range []string{"Id: -> @0 \"Q\" @0", "Value: -3", "Flags: int[0] @0", "Tag: 1"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("output missing %q:\n%s", want, b.String())
		}
	}
}

func TestPlain_Nil(t *testing.T) {
	if Plain(nil) != nil {
		t.Error("Plain(nil) should be nil")
	}
}
