// =============================================================================
// Honeybee 3DM - Chunk Codec
// =============================================================================
//
// A 3dm file is a 32-byte header followed by a flat run of typed chunks.
// Table chunks nest record chunks inside their payload. Every value is
// little-endian. Large coordinate arrays are zlib-compressed in place, with
// a one-byte flag marking the encoding.
//
// This file holds the framing primitives shared by read.go and write.go.
//
// =============================================================================

package rhino

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zlib"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
)

// fileMagic opens every 3dm file, followed by the archive version digits
// padded to 8 bytes.
const fileMagic = "3D Geometry File Format "

// archiveVersion is the version this codec reads and writes.
const archiveVersion = 70

type typecode uint32

const (
	tcodeSettingsTable  typecode = 0x10000001
	tcodeLayerTable     typecode = 0x10000002
	tcodeMaterialTable  typecode = 0x10000003
	tcodeObjectTable    typecode = 0x10000004
	tcodeEndOfFile      typecode = 0x1000FFFF
	tcodeLayerRecord    typecode = 0x20000001
	tcodeMaterialRecord typecode = 0x20000002
	tcodeObjectRecord   typecode = 0x20000003
	tcodeGeometry       typecode = 0x30000001
	tcodeAttributes     typecode = 0x30000002
)

// compressThreshold is the payload size in bytes above which coordinate
// arrays are zlib-compressed.
const compressThreshold = 4096

// maxChunkLen bounds a declared chunk or array length. Real tables stay far
// below this; a larger length field is corrupt input, not a big model.
const maxChunkLen = 1 << 30

var (
	// ErrNotA3dmFile is returned when the magic header is missing.
	ErrNotA3dmFile = errors.New("rhino: not a 3dm file")

	// ErrTruncated is returned when a chunk length runs past the input.
	ErrTruncated = errors.New("rhino: truncated 3dm file")
)

// writeChunk frames a payload under a typecode.
func writeChunk(w io.Writer, code typecode, payload []byte) error {
	var head [12]byte
	binary.LittleEndian.PutUint32(head[0:4], uint32(code))
	binary.LittleEndian.PutUint64(head[4:12], uint64(len(payload)))
	if _, err := w.Write(head[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// readChunk reads the next chunk frame. io.EOF is returned unwrapped when
// the input ends cleanly at a chunk boundary.
func readChunk(r io.Reader) (typecode, []byte, error) {
	var head [12]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		if err == io.EOF {
			return 0, nil, io.EOF
		}
		return 0, nil, ErrTruncated
	}
	code := typecode(binary.LittleEndian.Uint32(head[0:4]))
	length := binary.LittleEndian.Uint64(head[4:12])
	if length > maxChunkLen {
		return 0, nil, ErrTruncated
	}
	var payload bytes.Buffer
	if _, err := io.CopyN(&payload, r, int64(length)); err != nil {
		return 0, nil, ErrTruncated
	}
	return code, payload.Bytes(), nil
}

// buffer is a growable little-endian value writer for chunk payloads.
type buffer struct {
	bytes.Buffer
}

func (b *buffer) putU8(v uint8) { b.WriteByte(v) }

func (b *buffer) putBool(v bool) {
	if v {
		b.WriteByte(1)
	} else {
		b.WriteByte(0)
	}
}

func (b *buffer) putU32(v uint32) {
	var t [4]byte
	binary.LittleEndian.PutUint32(t[:], v)
	b.Write(t[:])
}

func (b *buffer) putI32(v int32) { b.putU32(uint32(v)) }

func (b *buffer) putF64(v float64) {
	var t [8]byte
	binary.LittleEndian.PutUint64(t[:], math.Float64bits(v))
	b.Write(t[:])
}

func (b *buffer) putString(s string) {
	b.putU32(uint32(len(s)))
	b.WriteString(s)
}

func (b *buffer) putUUID(id uuid.UUID) {
	b.Write(id[:])
}

// putPoints writes a coordinate array, compressed when large.
func (b *buffer) putPoints(pts []geometry.Point3D) error {
	raw := buffer{}
	for _, pt := range pts {
		raw.putF64(pt.X)
		raw.putF64(pt.Y)
		raw.putF64(pt.Z)
	}
	return b.putArray(uint32(len(pts)), raw.Bytes())
}

// putMeshFaces writes a face index array, compressed when large.
func (b *buffer) putMeshFaces(faces []geometry.MeshFace) error {
	raw := buffer{}
	for _, f := range faces {
		raw.putI32(int32(f.A))
		raw.putI32(int32(f.B))
		raw.putI32(int32(f.C))
		raw.putI32(int32(f.D))
	}
	return b.putArray(uint32(len(faces)), raw.Bytes())
}

// putArray writes an element count and raw bytes, zlib-compressing the bytes
// when they exceed the threshold. Layout: count u32, flag u8, rawLen u32,
// [compLen u32 when compressed], data. Both lengths are explicit so the
// parser never has to guess the element stride.
func (b *buffer) putArray(count uint32, raw []byte) error {
	b.putU32(count)
	if len(raw) < compressThreshold {
		b.putU8(0)
		b.putU32(uint32(len(raw)))
		b.Write(raw)
		return nil
	}
	b.putU8(1)
	b.putU32(uint32(len(raw)))
	var comp bytes.Buffer
	zw := zlib.NewWriter(&comp)
	if _, err := zw.Write(raw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	b.putU32(uint32(comp.Len()))
	b.Write(comp.Bytes())
	return nil
}

// parser is the matching little-endian value reader.
type parser struct {
	r *bytes.Reader
}

func newParser(payload []byte) *parser {
	return &parser{r: bytes.NewReader(payload)}
}

func (p *parser) u8() (uint8, error) {
	b, err := p.r.ReadByte()
	if err != nil {
		return 0, ErrTruncated
	}
	return b, nil
}

func (p *parser) bool() (bool, error) {
	b, err := p.u8()
	return b != 0, err
}

func (p *parser) u32() (uint32, error) {
	var t [4]byte
	if _, err := io.ReadFull(p.r, t[:]); err != nil {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint32(t[:]), nil
}

func (p *parser) i32() (int32, error) {
	v, err := p.u32()
	return int32(v), err
}

func (p *parser) f64() (float64, error) {
	var t [8]byte
	if _, err := io.ReadFull(p.r, t[:]); err != nil {
		return 0, ErrTruncated
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(t[:])), nil
}

func (p *parser) string() (string, error) {
	n, err := p.u32()
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(p.r.Len()) {
		return "", ErrTruncated
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.r, buf); err != nil {
		return "", ErrTruncated
	}
	return string(buf), nil
}

func (p *parser) uuid() (uuid.UUID, error) {
	var id uuid.UUID
	if _, err := io.ReadFull(p.r, id[:]); err != nil {
		return id, ErrTruncated
	}
	return id, nil
}

// array reads the count/flag/data layout written by putArray and returns the
// element count with the raw bytes.
func (p *parser) array() (uint32, []byte, error) {
	count, err := p.u32()
	if err != nil {
		return 0, nil, err
	}
	flag, err := p.u8()
	if err != nil {
		return 0, nil, err
	}
	rawLen, err := p.u32()
	if err != nil {
		return 0, nil, err
	}
	if uint64(rawLen) > maxChunkLen {
		return 0, nil, ErrTruncated
	}
	if flag == 0 {
		if uint64(rawLen) > uint64(p.r.Len()) {
			return 0, nil, ErrTruncated
		}
		raw := make([]byte, rawLen)
		if _, err := io.ReadFull(p.r, raw); err != nil {
			return 0, nil, ErrTruncated
		}
		return count, raw, nil
	}
	compLen, err := p.u32()
	if err != nil {
		return 0, nil, err
	}
	if uint64(compLen) > uint64(p.r.Len()) {
		return 0, nil, ErrTruncated
	}
	comp := make([]byte, compLen)
	if _, err := io.ReadFull(p.r, comp); err != nil {
		return 0, nil, ErrTruncated
	}
	zr, err := zlib.NewReader(bytes.NewReader(comp))
	if err != nil {
		return 0, nil, fmt.Errorf("rhino: bad compressed array: %w", err)
	}
	defer zr.Close()
	raw := make([]byte, rawLen)
	if _, err := io.ReadFull(zr, raw); err != nil {
		return 0, nil, ErrTruncated
	}
	return count, raw, nil
}

func (p *parser) points() ([]geometry.Point3D, error) {
	count, raw, err := p.array()
	if err != nil {
		return nil, err
	}
	if uint64(len(raw)) < uint64(count)*24 {
		return nil, ErrTruncated
	}
	pts := make([]geometry.Point3D, count)
	for i := range pts {
		off := i * 24
		pts[i] = geometry.Point3D{
			X: math.Float64frombits(binary.LittleEndian.Uint64(raw[off:])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(raw[off+8:])),
			Z: math.Float64frombits(binary.LittleEndian.Uint64(raw[off+16:])),
		}
	}
	return pts, nil
}

func (p *parser) meshFaces() ([]geometry.MeshFace, error) {
	count, raw, err := p.array()
	if err != nil {
		return nil, err
	}
	if uint64(len(raw)) < uint64(count)*16 {
		return nil, ErrTruncated
	}
	faces := make([]geometry.MeshFace, count)
	for i := range faces {
		off := i * 16
		faces[i] = geometry.MeshFace{
			A: int(int32(binary.LittleEndian.Uint32(raw[off:]))),
			B: int(int32(binary.LittleEndian.Uint32(raw[off+4:]))),
			C: int(int32(binary.LittleEndian.Uint32(raw[off+8:]))),
			D: int(int32(binary.LittleEndian.Uint32(raw[off+12:]))),
		}
	}
	return faces, nil
}
