/*
Package cbor provides CBOR encoding/decoding functions.

It's a thin wrapper for github.com/fxamacker/cbor/v2, the reason for
having it is to make sure the same encoding options are used everywhere —
packed configuration state is hashed, so its serialization must be
deterministic.
*/
package cbor

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

type (
	// Version is the layout version prefix of a versioned CBOR blob.
	Version uint

	// RawCBOR is an already encoded CBOR payload carried as is.
	RawCBOR []byte
)

// NilVersion is not a valid version of any persisted layout.
const NilVersion Version = 0

var (
	encMode cbor.EncMode

	cborNil = []byte{0xf6}
)

func init() {
	// Core Deterministic Encoding as standard, see
	// <https://www.rfc-editor.org/rfc/rfc8949.html#name-deterministically-encoded-c>.
	// It is extremely unlikely that building encoder mode from options
	// provided by the CBOR library fails (ie memory corruption...)
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(fmt.Errorf("initializing CBOR encoder mode: %w", err))
	}
}

func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}

/*
MarshalVersioned prefixes the encoding of v with the given layout
version so that the decoder can check what it is about to unpack.
*/
func MarshalVersioned(ver Version, v any) ([]byte, error) {
	if ver == NilVersion {
		return nil, errors.New("version is nil")
	}
	buf := &bytes.Buffer{}
	enc := GetEncoder(buf)
	if err := enc.Encode(ver); err != nil {
		return nil, fmt.Errorf("failed to encode version: %w", err)
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	return buf.Bytes(), nil
}

/*
UnmarshalVersioned decodes the version prefix of a versioned blob and
returns it together with the still encoded payload.
*/
func UnmarshalVersioned(data []byte) (Version, RawCBOR, error) {
	dec := GetDecoder(bytes.NewReader(data))
	var ver Version
	if err := dec.Decode(&ver); err != nil {
		return NilVersion, nil, fmt.Errorf("failed to decode version: %w", err)
	}
	var payload cbor.RawMessage
	if err := dec.Decode(&payload); err != nil {
		return NilVersion, nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return ver, RawCBOR(payload), nil
}

func GetEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

func Encode(w io.Writer, v any) error {
	return GetEncoder(w).Encode(v)
}

func GetDecoder(r io.Reader) *cbor.Decoder {
	return cbor.NewDecoder(r)
}

func Decode(r io.Reader, v any) error {
	return GetDecoder(r).Decode(v)
}

// MarshalCBOR returns r or CBOR nil if r is empty.
func (r RawCBOR) MarshalCBOR() ([]byte, error) {
	if len(r) == 0 {
		return cborNil, nil
	}
	return r, nil
}

// UnmarshalCBOR copies data into r unless it's CBOR "nil marker" - in that
// case r is set to empty slice.
func (r *RawCBOR) UnmarshalCBOR(data []byte) error {
	if r == nil {
		return errors.New("UnmarshalCBOR on nil pointer")
	}
	if bytes.Equal(data, cborNil) {
		*r = (*r)[0:0]
	} else {
		*r = append((*r)[0:0], data...)
	}
	return nil
}
