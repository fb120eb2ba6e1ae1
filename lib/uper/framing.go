package uper

import (
	"github.com/pkg/errors"

	"github.com/go-uper/uper/lib/errs"
)

func (w *BitWriter) WriteChoiceIndex(index, variantCount int) error {
	if variantCount <= 0 || index < 0 || index >= variantCount {
		return errs.InvalidChoiceIndex(index, variantCount)
	}
	return w.WriteConstrainedInteger(int64(index), 0, int64(variantCount-1))
}

func (r *BitReader) ReadChoiceIndex(variantCount int) (int, error) {
	if variantCount <= 0 {
		return 0, errs.InvalidChoiceIndex(0, variantCount)
	}
	v, err := r.ReadConstrainedInteger(0, int64(variantCount-1))
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// WriteExtensibleChoiceIndex writes a 1-bit extension marker: 0 selects a
// root variant via WriteChoiceIndex, 1 selects an extension-added variant
// named by index-rootCount as a normally-small integer (X.691 §23.8).
func (w *BitWriter) WriteExtensibleChoiceIndex(index, rootCount int) error {
	if index < rootCount {
		w.buf.WriteBit(false)
		return w.WriteChoiceIndex(index, rootCount)
	}
	w.buf.WriteBit(true)
	return w.WriteNormallySmallNonNegativeInteger(uint64(index - rootCount))
}

func (r *BitReader) ReadExtensibleChoiceIndex(rootCount int) (int, error) {
	extended, err := r.buf.ReadBit()
	if err != nil {
		return 0, err
	}
	if !extended {
		return r.ReadChoiceIndex(rootCount)
	}
	k, err := r.ReadNormallySmallNonNegativeInteger()
	if err != nil {
		return 0, err
	}
	return rootCount + int(k), nil
}

// WriteSubString runs produce against a fresh Writer, measures its whole-
// octet length, and emits that length as a determinant followed by the
// fresh writer's bytes.
func (w *BitWriter) WriteSubString(produce func(Writer) error) error {
	sub := NewWriter()
	if err := produce(sub); err != nil {
		return err
	}
	content := sub.ByteContent()
	if err := w.WriteLengthDeterminant(uint64(len(content))); err != nil {
		return errors.WithMessage(err, "substring length")
	}
	return w.WriteBitStringTillEnd(content, 0)
}

// ReadSubString reads a length-determinant-prefixed run of octets and
// returns a Reader over just those octets, for the caller to decode
// independently of the enclosing stream's position.
func (r *BitReader) ReadSubString() (Reader, error) {
	n, err := r.ReadLengthDeterminant()
	if err != nil {
		return nil, errors.WithMessage(err, "substring length")
	}
	data := make([]byte, n)
	if err := r.ReadBitStringTillEnd(data, 0); err != nil {
		return nil, err
	}
	return NewReader(data, n*bitsPerByteInt)
}

// OptionalFlagsWriter tracks how many declared optional-presence bits
// remain unwritten in a sequence's presence bitmap (X.691 §19). Writing past the
// declared count is OptFlagsExhausted.
type OptionalFlagsWriter struct {
	w         Writer
	remaining int
}

// BeginOptionalFlags starts a presence bitmap of count flags against w.
func BeginOptionalFlags(w Writer, count int) *OptionalFlagsWriter {
	return &OptionalFlagsWriter{w: w, remaining: count}
}

func (o *OptionalFlagsWriter) WriteFlag(present bool) error {
	if o.remaining <= 0 {
		return errs.OptFlagsExhausted()
	}
	o.remaining--
	return o.w.WriteBit(present)
}

// Remaining returns the number of declared flags left to write.
func (o *OptionalFlagsWriter) Remaining() int { return o.remaining }

// OptionalFlagsReader is the read-side mirror of OptionalFlagsWriter.
type OptionalFlagsReader struct {
	r         Reader
	remaining int
}

// BeginOptionalFlagsRead starts reading a presence bitmap of count flags
// from r.
func BeginOptionalFlagsRead(r Reader, count int) *OptionalFlagsReader {
	return &OptionalFlagsReader{r: r, remaining: count}
}

func (o *OptionalFlagsReader) ReadFlag() (bool, error) {
	if o.remaining <= 0 {
		return false, errs.OptFlagsExhausted()
	}
	bit, err := o.r.ReadBit()
	if err != nil {
		return false, err
	}
	o.remaining--
	return bit, nil
}

// Remaining returns the number of declared flags left to read.
func (o *OptionalFlagsReader) Remaining() int { return o.remaining }
