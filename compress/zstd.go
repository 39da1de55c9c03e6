package compress

// ZstdCompressor provides Zstandard compression, favoring ratio over
// speed. Good default for archival payloads that are written once and
// read rarely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
