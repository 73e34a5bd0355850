package auth

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Digest builds the canonical byte string an agent request is signed over.
// Every field is length or width prefixed so that two different requests can
// never serialize to the same bytes. The method name, caller and nonce are
// always the first three fields; operation arguments follow in the order the
// operation declares them.
type Digest struct {
	buf bytes.Buffer
}

func NewDigest(method, caller string, nonce uint64) *Digest {
	d := &Digest{}
	d.AddString(method)
	d.AddString(caller)
	d.AddUint64(nonce)
	return d
}

func (d *Digest) AddUint64(v uint64) *Digest {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	d.buf.Write(b[:])
	return d
}

func (d *Digest) AddString(s string) *Digest {
	d.AddUint64(uint64(len(s)))
	d.buf.WriteString(s)
	return d
}

func (d *Digest) AddBytes(b []byte) *Digest {
	d.AddUint64(uint64(len(b)))
	d.buf.Write(b)
	return d
}

func (d *Digest) AddUint64Slice(vs []uint64) *Digest {
	d.AddUint64(uint64(len(vs)))
	for _, v := range vs {
		d.AddUint64(v)
	}
	return d
}

func (d *Digest) AddStringSlice(ss []string) *Digest {
	d.AddUint64(uint64(len(ss)))
	for _, s := range ss {
		d.AddString(s)
	}
	return d
}

// Sum returns the sha256 of the accumulated payload. Signatures are made
// over this value.
func (d *Digest) Sum() []byte {
	h := sha256.Sum256(d.buf.Bytes())
	return h[:]
}

func (d *Digest) SumHex() string {
	return hex.EncodeToString(d.Sum())
}
