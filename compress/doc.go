// Package compress provides the compression codecs used by a Deferred
// data source (see package source) to transform payload bytes before they
// are written into a file's blob.
//
// HFF itself is compression-agnostic: the format has no compression flag
// anywhere in its on-disk records. A compressed chunk is just a chunk
// whose bytes happen to be the output of one of these codecs; recovering
// the original bytes is an application-level concern, communicated out of
// band (typically via the header's content tag or a metadata entry), not a
// format-level one.
//
// # Supported algorithms
//
//   - None: passthrough, for data that is already compressed or for
//     testing without the cost of a real codec.
//   - Zstd: best ratio, moderate speed. Builds against klauspost's pure-Go
//     implementation by default; a cgo build tag switches to gozstd for
//     throughput-sensitive deployments.
//   - S2: Snappy-family codec tuned for speed over ratio.
//   - LZ4: very fast decompression, moderate ratio.
package compress
