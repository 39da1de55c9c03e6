package compress

import (
	"fmt"

	"github.com/hff-format/hff/format"
)

// Compressor compresses a Deferred data source's bytes before they are
// written into the payload blob.
type Compressor interface {
	// Compress compresses data and returns the compressed result; data is
	// not modified. The real codecs return a newly allocated slice, while
	// NoOpCompressor returns data itself.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's transform.
type Decompressor interface {
	// Decompress restores the original bytes from previously compressed
	// data. Returns an error if data is corrupted or was produced by a
	// different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a Codec for the given compression type. target
// names the caller for error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
