package vec

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/memkit/internal/conv"
)

// CompressionType selects the snapshot payload compression.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZstd uses zstd block compression (better ratio).
	CompressionZstd CompressionType = 2
)

// Snapshot layout, all integers little-endian:
//
//	[Magic:4][Version:1][Compression:1][Reserved:2][ElemSize:8][Len:8]
//	[UncompressedSize:4][CompressedSize:4][Payload:N]
//
// CompressedSize == 0 marks an uncompressed payload.
var snapshotMagic = [4]byte{'M', 'K', 'V', 'C'}

const (
	snapshotVersion    = 1
	snapshotHeaderSize = 20 // after the magic
	blockHeaderSize    = 8
)

type snapshotConfig struct {
	compression CompressionType
}

// SnapshotOption configures snapshot encoding.
type SnapshotOption func(*snapshotConfig)

// WithCompression selects the payload compression. Default is CompressionNone.
func WithCompression(c CompressionType) SnapshotOption {
	return func(cfg *snapshotConfig) {
		cfg.compression = c
	}
}

// WriteTo writes an uncompressed snapshot of the vector to w. It implements
// io.WriterTo.
func (v *Raw) WriteTo(w io.Writer) (int64, error) {
	return v.WriteToWithOptions(w)
}

// WriteToWithOptions writes a snapshot of the vector to w.
func (v *Raw) WriteToWithOptions(w io.Writer, opts ...SnapshotOption) (int64, error) {
	cfg := snapshotConfig{compression: CompressionNone}
	for _, opt := range opts {
		opt(&cfg)
	}

	cw := &countingWriter{w: w}

	if _, err := cw.Write(snapshotMagic[:]); err != nil {
		return cw.n, err
	}

	hdr := make([]byte, snapshotHeaderSize)
	hdr[0] = snapshotVersion
	hdr[1] = byte(cfg.compression)
	binary.LittleEndian.PutUint64(hdr[4:], uint64(v.elem))
	binary.LittleEndian.PutUint64(hdr[12:], uint64(v.n))
	if _, err := cw.Write(hdr); err != nil {
		return cw.n, err
	}

	block, err := compressPayload(v.buf[:v.n*v.elem], cfg.compression)
	if err != nil {
		return cw.n, err
	}
	if _, err := cw.Write(block); err != nil {
		return cw.n, err
	}

	return cw.n, nil
}

// ReadRawFrom decodes a snapshot written by WriteToWithOptions. The returned
// vector has capacity equal to its length.
func ReadRawFrom(r io.Reader) (*Raw, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if magic != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidSnapshot, magic[:])
	}

	hdr := make([]byte, snapshotHeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, err
	}
	if hdr[0] != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, hdr[0])
	}
	compression := CompressionType(hdr[1])
	if compression > CompressionZstd {
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidSnapshot, compression)
	}

	elemSize, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(hdr[4:]))
	if err != nil || elemSize <= 0 {
		return nil, fmt.Errorf("%w: element size %d", ErrInvalidSnapshot, binary.LittleEndian.Uint64(hdr[4:]))
	}
	length, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(hdr[12:]))
	if err != nil {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSnapshot, binary.LittleEndian.Uint64(hdr[12:]))
	}

	payload, err := readPayload(r, compression)
	if err != nil {
		return nil, err
	}
	// Compare via division so a huge length field cannot overflow the
	// expected byte count into a small value.
	if len(payload)%elemSize != 0 || len(payload)/elemSize != length {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d elements of %d bytes",
			ErrInvalidSnapshot, len(payload), length, elemSize)
	}

	v := NewRaw(elemSize)
	if length > 0 {
		v.buf = make([]byte, len(payload))
		copy(v.buf, payload)
		v.c = length
		v.n = length
	}
	return v, nil
}

// compressPayload frames data as a snapshot payload block, compressing it
// with the given algorithm. Incompressible data falls back to uncompressed
// framing regardless of the requested algorithm.
func compressPayload(data []byte, compression CompressionType) ([]byte, error) {
	size, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("payload too large: %w", err)
	}

	var compressed []byte
	switch compression {
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZstd:
		compressed, err = compressZstd(data)
	}
	if err != nil {
		return nil, err
	}

	if compressed == nil || len(compressed) >= len(data) {
		block := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(block[0:], size)
		binary.LittleEndian.PutUint32(block[4:], 0) // 0 = uncompressed
		copy(block[blockHeaderSize:], data)
		return block, nil
	}

	compressedSize, err := conv.IntToUint32(len(compressed))
	if err != nil {
		return nil, fmt.Errorf("payload too large: %w", err)
	}
	block := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(block[0:], size)
	binary.LittleEndian.PutUint32(block[4:], compressedSize)
	copy(block[blockHeaderSize:], compressed)
	return block, nil
}

// readPayload reads one framed payload block and returns the uncompressed
// bytes.
func readPayload(r io.Reader, compression CompressionType) ([]byte, error) {
	hdr := make([]byte, blockHeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, err
	}

	uncompressedSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(hdr[0:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	compressedSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(hdr[4:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	if compressedSize == 0 {
		data := make([]byte, uncompressedSize)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}
		return data, nil
	}

	compressed := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, err
	}

	result := make([]byte, uncompressedSize)
	switch compression {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressed, result)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
		if n != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrInvalidSnapshot, n, uncompressedSize)
		}
		return result, nil

	case CompressionZstd:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(compressed, result[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
		if len(decoded) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrInvalidSnapshot, len(decoded), uncompressedSize)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: compressed payload with compression %d", ErrInvalidSnapshot, compression)
	}
}

func compressLZ4(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressZstd(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)
	return enc.EncodeAll(data, nil), nil
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
