package uper

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/go-uper/uper/lib/bitbuffer"
	"github.com/go-uper/uper/lib/errs"
)

// BitReader is the concrete Reader backed by a bitbuffer.BitBuffer.
type BitReader struct {
	buf *bitbuffer.BitBuffer
}

// NewReader returns a BitReader positioned at the start of data, which
// holds bitLen significant bits.
func NewReader(data []byte, bitLen uint64) (*BitReader, error) {
	buf, err := bitbuffer.FromBits(data, bitLen)
	if err != nil {
		return nil, err
	}
	return &BitReader{buf: buf}, nil
}

func (r *BitReader) BitsRemaining() uint64 { return r.buf.BitsRemaining() }

func (r *BitReader) ReadBit() (bool, error) {
	return r.buf.ReadBit()
}

func (r *BitReader) ReadConstrainedInteger(lower, upper int64) (int64, error) {
	width := constrainedWidth(lower, upper)
	if width == 0 {
		return lower, nil
	}
	delta, err := r.buf.ReadBits(width)
	if err != nil {
		return 0, err
	}
	return int64(delta) + lower, nil
}

func (r *BitReader) ReadLengthDeterminant() (uint64, error) {
	short, err := r.buf.ReadBit()
	if err != nil {
		return 0, err
	}
	if !short {
		return r.buf.ReadBits(7)
	}
	long, err := r.buf.ReadBit()
	if err != nil {
		return 0, err
	}
	if !long {
		return r.buf.ReadBits(14)
	}
	return 0, errs.UnsupportedOperation("fragmented length determinant is unsupported")
}

func (r *BitReader) ReadUnconstrainedInteger() (uint64, error) {
	n, err := r.ReadLengthDeterminant()
	if err != nil {
		return 0, errors.WithMessage(err, "unconstrained integer length")
	}
	if n > 8 {
		return 0, errs.UnsupportedOperation("unconstrained integer spans more than 8 octets")
	}
	return r.buf.ReadBits(uint8(n * 8))
}

func (r *BitReader) ReadNormallySmallNonNegativeInteger() (uint64, error) {
	escaped, err := r.buf.ReadBit()
	if err != nil {
		return 0, err
	}
	if !escaped {
		return r.buf.ReadBits(6)
	}
	return r.ReadUnconstrainedInteger()
}

func (r *BitReader) ReadBitString(dst []byte, bitOffset, bitLength int) error {
	room := len(dst) * bitsPerByteInt
	if bitOffset < 0 || bitLength < 0 || room < bitOffset+bitLength {
		return errs.InsufficientSpace(bitOffset+bitLength, max(room, 0))
	}
	if r.buf.BitsRemaining() < uint64(bitLength) {
		return errs.InsufficientData(uint64(bitLength), r.buf.BitsRemaining())
	}
	for i := bitOffset; i < bitOffset+bitLength; i++ {
		bit, err := r.buf.ReadBit()
		if err != nil {
			return err
		}
		byteIdx := i / bitsPerByteInt
		shift := uint(bitsPerByteInt-1) - uint(i%bitsPerByteInt)
		if bit {
			dst[byteIdx] |= 1 << shift
		} else {
			dst[byteIdx] &^= 1 << shift
		}
	}
	return nil
}

func (r *BitReader) ReadBitStringTillEnd(dst []byte, bitOffset int) error {
	return r.ReadBitString(dst, bitOffset, len(dst)*bitsPerByteInt-bitOffset)
}

func (r *BitReader) ReadOctetStringBounded(lower, upper uint64) ([]byte, error) {
	n, err := r.ReadConstrainedInteger(int64(lower), int64(upper))
	if err != nil {
		return nil, errors.WithMessage(err, "octet string length")
	}
	out := make([]byte, n)
	if err := r.ReadBitStringTillEnd(out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BitReader) ReadOctetStringUnbounded() ([]byte, error) {
	n, err := r.ReadLengthDeterminant()
	if err != nil {
		return nil, errors.WithMessage(err, "octet string length")
	}
	out := make([]byte, n)
	if err := r.ReadBitStringTillEnd(out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BitReader) ReadUTF8String() (string, error) {
	n, err := r.ReadLengthDeterminant()
	if err != nil {
		return "", errors.WithMessage(err, "utf8 string length")
	}
	data := make([]byte, n)
	if err := r.ReadBitStringTillEnd(data, 0); err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errs.InvalidUtf8String()
	}
	return string(data), nil
}
