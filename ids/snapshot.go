package ids

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/ClickerMonkey/nage/internal/conv"
)

// Snapshot layout:
//
//	[0:4]  magic
//	[4:6]  version (little endian)
//	[6]    flags (bit 0: zstd-compressed payload)
//	[7]    reserved
//	then the payload: u32 id count, followed by u32 length + bytes for every
//	uid from 1 up (uid 0, the empty string, is implicit).
//
// Restoring into a fresh interner re-interns the strings in uid order, so
// every uid resolves to the same text it did when the snapshot was written.
var snapshotMagic = [4]byte{'N', 'G', 'I', '1'}

const (
	snapshotVersion  = 1
	snapshotFlagZstd = 1 << 0
)

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// WriteTo writes a snapshot of the intern table to w, implementing
// io.WriterTo. The payload is zstd-compressed when the interner was built
// with WithCompression(true).
func (in *Interner) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	var hdr [8]byte
	copy(hdr[0:4], snapshotMagic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], snapshotVersion)
	if in.compress {
		hdr[6] = snapshotFlagZstd
	}
	if _, err := cw.Write(hdr[:]); err != nil {
		return cw.n, err
	}

	payload := io.Writer(cw)
	var enc *zstd.Encoder
	if in.compress {
		var err error
		enc, err = zstd.NewWriter(cw)
		if err != nil {
			return cw.n, err
		}
		payload = enc
	}

	count, err := conv.IntToUint32(len(in.spans))
	if err != nil {
		return cw.n, err
	}
	if err := binary.Write(payload, binary.LittleEndian, count); err != nil {
		return cw.n, err
	}
	for uid := uint32(1); uid < count; uid++ {
		b := in.LookupBytes(UID(uid))
		if err := binary.Write(payload, binary.LittleEndian, uint32(len(b))); err != nil {
			return cw.n, err
		}
		if _, err := payload.Write(b); err != nil {
			return cw.n, err
		}
	}

	if enc != nil {
		if err := enc.Close(); err != nil {
			return cw.n, err
		}
	}

	in.logger.Debug("wrote snapshot", "ids", len(in.spans), "bytes", cw.n)
	return cw.n, nil
}

// ReadFrom restores a snapshot into the interner, implementing io.ReaderFrom.
// The interner must be fresh (nothing interned beyond the reserved empty
// string); interned strings are never removed, so a populated table cannot be
// replaced in place. Compression is detected from the header.
func (in *Interner) ReadFrom(r io.Reader) (int64, error) {
	if len(in.spans) > 1 {
		return 0, ErrNotEmpty
	}
	cr := &countingReader{r: r}

	var hdr [8]byte
	if _, err := io.ReadFull(cr, hdr[:]); err != nil {
		return cr.n, err
	}
	if [4]byte(hdr[0:4]) != snapshotMagic {
		return cr.n, fmt.Errorf("unsupported snapshot format: bad magic")
	}
	if ver := binary.LittleEndian.Uint16(hdr[4:6]); ver != snapshotVersion {
		return cr.n, fmt.Errorf("unsupported snapshot version: %d", ver)
	}

	payload := io.Reader(cr)
	if hdr[6]&snapshotFlagZstd != 0 {
		dec, err := zstd.NewReader(cr)
		if err != nil {
			return cr.n, err
		}
		defer dec.Close()
		payload = dec
	}

	var count uint32
	if err := binary.Read(payload, binary.LittleEndian, &count); err != nil {
		return cr.n, err
	}
	if count == 0 {
		return cr.n, fmt.Errorf("invalid snapshot: zero id count")
	}

	for uid := uint32(1); uid < count; uid++ {
		var length uint32
		if err := binary.Read(payload, binary.LittleEndian, &length); err != nil {
			return cr.n, err
		}
		n, err := conv.Uint32ToInt(length)
		if err != nil {
			return cr.n, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(payload, buf); err != nil {
			return cr.n, err
		}
		// Re-interning in uid order must reproduce the written uid; anything
		// else means duplicate or out-of-order entries.
		if got := in.Translate(string(buf)); uint32(got) != uid {
			return cr.n, fmt.Errorf("invalid snapshot: string %q maps to id %d, want %d", buf, got, uid)
		}
	}

	in.logger.Debug("restored snapshot", "ids", len(in.spans), "bytes", cr.n)
	return cr.n, nil
}
