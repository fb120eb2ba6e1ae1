package uper

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/go-uper/uper/lib/bitbuffer"
	"github.com/go-uper/uper/lib/errs"
)

// BitWriter is the concrete Writer backed by a bitbuffer.BitBuffer. The
// zero value is not usable; construct with NewWriter.
type BitWriter struct {
	buf *bitbuffer.BitBuffer
}

// NewWriter returns an empty BitWriter ready for encoding.
func NewWriter() *BitWriter {
	return &BitWriter{buf: bitbuffer.NewWriter()}
}

func (w *BitWriter) BitLen() uint64      { return w.buf.BitLen() }
func (w *BitWriter) ByteContent() []byte { return w.buf.Content() }

func (w *BitWriter) WriteBit(bit bool) error {
	w.buf.WriteBit(bit)
	return nil
}

// constrainedWidth returns the number of bits needed to hold any delta in
// [0, upper-lower] (X.691 §11.5.2: 2^width-1 >= upper-lower).
func constrainedWidth(lower, upper int64) uint8 {
	span := uint64(upper - lower)
	return uint8(64 - bits.LeadingZeros64(span))
}

func (w *BitWriter) WriteConstrainedInteger(value, lower, upper int64) error {
	if value < lower || value > upper {
		return errs.ValueNotInRange(value, lower, upper)
	}
	width := constrainedWidth(lower, upper)
	if width == 0 {
		return nil
	}
	w.buf.WriteBits(width, uint64(value-lower))
	return nil
}

func (w *BitWriter) WriteLengthDeterminant(length uint64) error {
	switch {
	case length <= maxShortLength:
		w.buf.WriteBit(false)
		w.buf.WriteBits(7, length)
		return nil
	case length <= maxLongLength:
		w.buf.WriteBit(true)
		w.buf.WriteBit(false)
		w.buf.WriteBits(14, length)
		return nil
	default:
		return errs.UnsupportedOperation("length determinant exceeds 16383 octets; fragmentation is unsupported")
	}
}

// octetsNeeded returns the smallest number of octets that hold value in a
// big-endian unsigned representation, minimum 1.
func octetsNeeded(value uint64) int {
	if value == 0 {
		return 1
	}
	return (64 - bits.LeadingZeros64(value) + 7) / 8
}

func (w *BitWriter) WriteUnconstrainedInteger(value uint64) error {
	if value > math.MaxInt64 {
		return errs.UnsupportedOperation("unconstrained integer exceeds 63 bits")
	}
	n := octetsNeeded(value)
	if err := w.WriteLengthDeterminant(uint64(n)); err != nil {
		return err
	}
	w.buf.WriteBits(uint8(n*8), value)
	return nil
}

func (w *BitWriter) WriteNormallySmallNonNegativeInteger(value uint64) error {
	if value <= normallySmallThreshold {
		w.buf.WriteBit(false)
		w.buf.WriteBits(6, value)
		return nil
	}
	w.buf.WriteBit(true)
	return w.WriteUnconstrainedInteger(value)
}

func (w *BitWriter) WriteBitString(src []byte, bitOffset, bitLength int) error {
	have := len(src) * bitsPerByteInt
	if bitOffset < 0 || bitLength < 0 || have < bitOffset+bitLength {
		return errs.InsufficientData(uint64(bitOffset+bitLength), uint64(have))
	}
	for i := bitOffset; i < bitOffset+bitLength; i++ {
		byteIdx := i / bitsPerByteInt
		shift := uint(bitsPerByteInt-1) - uint(i%bitsPerByteInt)
		w.buf.WriteBit((src[byteIdx]>>shift)&1 == 1)
	}
	return nil
}

func (w *BitWriter) WriteBitStringTillEnd(src []byte, bitOffset int) error {
	return w.WriteBitString(src, bitOffset, len(src)*bitsPerByteInt-bitOffset)
}

func (w *BitWriter) WriteOctetStringBounded(value []byte, lower, upper uint64) error {
	n := uint64(len(value))
	if n < lower || n > upper {
		return errs.SizeNotInRange(int64(n), int64(lower), int64(upper))
	}
	if err := w.WriteConstrainedInteger(int64(n), int64(lower), int64(upper)); err != nil {
		return errors.WithMessage(err, "octet string length")
	}
	return w.WriteBitStringTillEnd(value, 0)
}

func (w *BitWriter) WriteOctetStringUnbounded(value []byte) error {
	if err := w.WriteLengthDeterminant(uint64(len(value))); err != nil {
		return errors.WithMessage(err, "octet string length")
	}
	return w.WriteBitStringTillEnd(value, 0)
}

func (w *BitWriter) WriteUTF8String(value string) error {
	data := []byte(value)
	if err := w.WriteLengthDeterminant(uint64(len(data))); err != nil {
		return errors.WithMessage(err, "utf8 string length")
	}
	return w.WriteBitStringTillEnd(data, 0)
}
