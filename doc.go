// Package datcodec decodes rows of the game-asset .dat table format.
//
// A .dat table stores a fixed-width record region followed by a variable-length
// heap (the data section). Each field of a row is described by a schema string
// such as "int", "ref|string" or "ref|list|ref|string"; the decoder turns bytes
// plus schema into a typed value tree.
//
// # Architecture Overview
//
//	datcodec/            Root package with the Source interface
//	├── transcoder/      Schema registry, primitive codecs, decoder, values, heap
//	├── dat/             .dat container: row count, row width, data-section base
//	├── schema/          YAML table layout files
//	├── source/          Source implementations (bytes, files, wasm guest memory)
//	├── errors/          Structured error types for debugging
//	└── cmd/datdump/     Command line dumper and interactive row browser
//
// # Quick Start
//
//	tbl, err := dat.Open(source.Bytes(data))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg := transcoder.NewRegistry()
//	layout, err := transcoder.NewRecordLayout(reg,
//	    transcoder.Field{Name: "Id", Schema: "ref|string", Pointer: true},
//	    transcoder.Field{Name: "Level", Schema: "int"},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sess := tbl.Session(reg)
//	rec, err := tbl.Row(sess, layout, 0)
//	fmt.Println(transcoder.Plain(rec.Fields[0].Value)) // "Metadata/Items/Rings/Ring1"
//
// # Schema Grammar
//
//	schema   := (modifier '|')* base
//	modifier := "ref" | "list"
//	base     := bool | byte | short | int | uint | long | ulong | string | alias
//
// # Thread Safety
//
// Registry is safe for concurrent use. Sessions, cursors and heaps are NOT
// thread-safe; give every goroutine its own session over the same Source.
package datcodec
