// Package source provides datcodec.Source implementations: in-memory bytes,
// files on disk and the linear memory of a wazero module instance.
package source
