package uper

import "fmt"

// DiagnosticWriter satisfies Writer by delegating every operation to an
// inner Writer and additionally recording a human-readable trace line per
// call. It generalizes the teacher codec's compile-time
// ENABLE_TRACE/Codec.Trace println hook into an always-available,
// inspectable form: a DiagnosticWriter is just another Writer, so it can
// be handed to any typed adapter in place of the real one.
type DiagnosticWriter struct {
	inner Writer
	trace []string
}

// NewDiagnosticWriter wraps inner, recording a trace entry for every call.
func NewDiagnosticWriter(inner Writer) *DiagnosticWriter {
	return &DiagnosticWriter{inner: inner}
}

// Trace returns the recorded entries in call order.
func (d *DiagnosticWriter) Trace() []string {
	return d.trace
}

func (d *DiagnosticWriter) record(format string, args ...any) {
	d.trace = append(d.trace, fmt.Sprintf(format, args...))
}

func (d *DiagnosticWriter) BitLen() uint64      { return d.inner.BitLen() }
func (d *DiagnosticWriter) ByteContent() []byte { return d.inner.ByteContent() }

func (d *DiagnosticWriter) WriteBit(bit bool) error {
	d.record("write_bit(%t)", bit)
	return d.inner.WriteBit(bit)
}

func (d *DiagnosticWriter) WriteConstrainedInteger(value, lower, upper int64) error {
	d.record("write_constrained_integer(%d, [%d, %d])", value, lower, upper)
	return d.inner.WriteConstrainedInteger(value, lower, upper)
}

func (d *DiagnosticWriter) WriteNormallySmallNonNegativeInteger(value uint64) error {
	d.record("write_normally_small_non_negative_integer(%d)", value)
	return d.inner.WriteNormallySmallNonNegativeInteger(value)
}

func (d *DiagnosticWriter) WriteUnconstrainedInteger(value uint64) error {
	d.record("write_unconstrained_integer(%d)", value)
	return d.inner.WriteUnconstrainedInteger(value)
}

func (d *DiagnosticWriter) WriteLengthDeterminant(length uint64) error {
	d.record("write_length_determinant(%d)", length)
	return d.inner.WriteLengthDeterminant(length)
}

func (d *DiagnosticWriter) WriteBitString(src []byte, bitOffset, bitLength int) error {
	d.record("write_bit_string(offset=%d, length=%d)", bitOffset, bitLength)
	return d.inner.WriteBitString(src, bitOffset, bitLength)
}

func (d *DiagnosticWriter) WriteBitStringTillEnd(src []byte, bitOffset int) error {
	d.record("write_bit_string_till_end(offset=%d)", bitOffset)
	return d.inner.WriteBitStringTillEnd(src, bitOffset)
}

func (d *DiagnosticWriter) WriteOctetStringBounded(value []byte, lower, upper uint64) error {
	d.record("write_octet_string_bounded(len=%d, [%d, %d])", len(value), lower, upper)
	return d.inner.WriteOctetStringBounded(value, lower, upper)
}

func (d *DiagnosticWriter) WriteOctetStringUnbounded(value []byte) error {
	d.record("write_octet_string_unbounded(len=%d)", len(value))
	return d.inner.WriteOctetStringUnbounded(value)
}

func (d *DiagnosticWriter) WriteUTF8String(value string) error {
	d.record("write_utf8_string(%q)", value)
	return d.inner.WriteUTF8String(value)
}

func (d *DiagnosticWriter) WriteChoiceIndex(index, variantCount int) error {
	d.record("write_choice_index(%d of %d)", index, variantCount)
	return d.inner.WriteChoiceIndex(index, variantCount)
}

func (d *DiagnosticWriter) WriteExtensibleChoiceIndex(index, rootCount int) error {
	d.record("write_extensible_choice_index(%d, root=%d)", index, rootCount)
	return d.inner.WriteExtensibleChoiceIndex(index, rootCount)
}

func (d *DiagnosticWriter) WriteSubString(produce func(Writer) error) error {
	d.record("write_substring(begin)")
	err := d.inner.WriteSubString(func(sub Writer) error {
		nested := NewDiagnosticWriter(sub)
		if perr := produce(nested); perr != nil {
			d.trace = append(d.trace, nested.trace...)
			return perr
		}
		d.trace = append(d.trace, nested.trace...)
		return nil
	})
	d.record("write_substring(end)")
	return err
}

// DiagnosticReader mirrors DiagnosticWriter on the read side.
type DiagnosticReader struct {
	inner Reader
	trace []string
}

// NewDiagnosticReader wraps inner, recording a trace entry for every call.
func NewDiagnosticReader(inner Reader) *DiagnosticReader {
	return &DiagnosticReader{inner: inner}
}

// Trace returns the recorded entries in call order.
func (d *DiagnosticReader) Trace() []string {
	return d.trace
}

func (d *DiagnosticReader) record(format string, args ...any) {
	d.trace = append(d.trace, fmt.Sprintf(format, args...))
}

func (d *DiagnosticReader) BitsRemaining() uint64 { return d.inner.BitsRemaining() }

func (d *DiagnosticReader) ReadBit() (bool, error) {
	v, err := d.inner.ReadBit()
	d.record("read_bit() = %t", v)
	return v, err
}

func (d *DiagnosticReader) ReadConstrainedInteger(lower, upper int64) (int64, error) {
	v, err := d.inner.ReadConstrainedInteger(lower, upper)
	d.record("read_constrained_integer([%d, %d]) = %d", lower, upper, v)
	return v, err
}

func (d *DiagnosticReader) ReadNormallySmallNonNegativeInteger() (uint64, error) {
	v, err := d.inner.ReadNormallySmallNonNegativeInteger()
	d.record("read_normally_small_non_negative_integer() = %d", v)
	return v, err
}

func (d *DiagnosticReader) ReadUnconstrainedInteger() (uint64, error) {
	v, err := d.inner.ReadUnconstrainedInteger()
	d.record("read_unconstrained_integer() = %d", v)
	return v, err
}

func (d *DiagnosticReader) ReadLengthDeterminant() (uint64, error) {
	v, err := d.inner.ReadLengthDeterminant()
	d.record("read_length_determinant() = %d", v)
	return v, err
}

func (d *DiagnosticReader) ReadBitString(dst []byte, bitOffset, bitLength int) error {
	d.record("read_bit_string(offset=%d, length=%d)", bitOffset, bitLength)
	return d.inner.ReadBitString(dst, bitOffset, bitLength)
}

func (d *DiagnosticReader) ReadBitStringTillEnd(dst []byte, bitOffset int) error {
	d.record("read_bit_string_till_end(offset=%d)", bitOffset)
	return d.inner.ReadBitStringTillEnd(dst, bitOffset)
}

func (d *DiagnosticReader) ReadOctetStringBounded(lower, upper uint64) ([]byte, error) {
	v, err := d.inner.ReadOctetStringBounded(lower, upper)
	d.record("read_octet_string_bounded([%d, %d]) = %d bytes", lower, upper, len(v))
	return v, err
}

func (d *DiagnosticReader) ReadOctetStringUnbounded() ([]byte, error) {
	v, err := d.inner.ReadOctetStringUnbounded()
	d.record("read_octet_string_unbounded() = %d bytes", len(v))
	return v, err
}

func (d *DiagnosticReader) ReadUTF8String() (string, error) {
	v, err := d.inner.ReadUTF8String()
	d.record("read_utf8_string() = %q", v)
	return v, err
}

func (d *DiagnosticReader) ReadChoiceIndex(variantCount int) (int, error) {
	v, err := d.inner.ReadChoiceIndex(variantCount)
	d.record("read_choice_index(of %d) = %d", variantCount, v)
	return v, err
}

func (d *DiagnosticReader) ReadExtensibleChoiceIndex(rootCount int) (int, error) {
	v, err := d.inner.ReadExtensibleChoiceIndex(rootCount)
	d.record("read_extensible_choice_index(root=%d) = %d", rootCount, v)
	return v, err
}

func (d *DiagnosticReader) ReadSubString() (Reader, error) {
	d.record("read_substring(begin)")
	sub, err := d.inner.ReadSubString()
	if err != nil {
		d.record("read_substring(end, error)")
		return nil, err
	}
	d.record("read_substring(end)")
	return NewDiagnosticReader(sub), nil
}
