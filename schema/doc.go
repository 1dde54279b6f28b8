// Package schema loads table layouts from YAML.
//
//	aliases:
//	  Text: ref|string
//	tables:
//	  Stats:
//	    fields:
//	      - {name: Id, type: Text, pointer: true}
//	      - {name: Value, type: int}
//
// Aliases are registered on every registry built from the file. Unknown keys
// are rejected.
package schema
