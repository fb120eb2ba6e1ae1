package uper

var (
	_ Writer = (*BitWriter)(nil)
	_ Writer = (*DiagnosticWriter)(nil)
	_ Reader = (*BitReader)(nil)
	_ Reader = (*DiagnosticReader)(nil)
)

// Writer is the capability surface a typed adapter (generated externally
// from an ASN.1 module definition) composes to serialize a value as UPER.
// A concrete Writer never aligns to an octet boundary; every method may
// start and end mid-byte.
type Writer interface {
	// WriteBit appends a single bit.
	WriteBit(bit bool) error

	// WriteConstrainedInteger writes value - lower in exactly
	// ceil(log2(upper-lower+1)) bits. value must lie in [lower, upper].
	WriteConstrainedInteger(value, lower, upper int64) error

	// WriteNormallySmallNonNegativeInteger writes a value expected to
	// usually be small (X.691 §11.6): a 1-bit flag followed by either a
	// 6-bit inline value or an escape to WriteUnconstrainedInteger.
	WriteNormallySmallNonNegativeInteger(value uint64) error

	// WriteUnconstrainedInteger writes a length determinant (in octets)
	// followed by value's big-endian payload. value must fit in 63 bits.
	WriteUnconstrainedInteger(value uint64) error

	// WriteLengthDeterminant writes length using the two-form PER encoding.
	// length beyond 16383 is UnsupportedOperation; this codec never
	// fragments.
	WriteLengthDeterminant(length uint64) error

	// WriteBitString copies bitLength bits of src, starting at bitOffset,
	// verbatim into the stream.
	WriteBitString(src []byte, bitOffset, bitLength int) error

	// WriteBitStringTillEnd writes every bit of src from bitOffset onward.
	WriteBitStringTillEnd(src []byte, bitOffset int) error

	// WriteOctetStringBounded writes a size-constrained octet string: a
	// constrained-integer length over [lower, upper] followed by the bytes.
	WriteOctetStringBounded(value []byte, lower, upper uint64) error

	// WriteOctetStringUnbounded writes an unconstrained-length octet
	// string: a length determinant followed by the bytes.
	WriteOctetStringUnbounded(value []byte) error

	// WriteUTF8String writes value's UTF-8 bytes with an unconstrained
	// length determinant prefix.
	WriteUTF8String(value string) error

	// WriteChoiceIndex writes index as a constrained integer over
	// [0, variantCount-1]. index outside that range is InvalidChoiceIndex.
	WriteChoiceIndex(index, variantCount int) error

	// WriteExtensibleChoiceIndex writes a 1-bit extension marker, then
	// either a plain choice index over the root variants or a
	// normally-small integer naming an extension-added variant.
	WriteExtensibleChoiceIndex(index, rootCount int) error

	// WriteSubString runs produce against a fresh Writer, then emits the
	// fresh writer's content with a length-determinant prefix. Used for
	// nested, independently-measured fields.
	WriteSubString(produce func(Writer) error) error

	// BitLen returns the number of bits written so far.
	BitLen() uint64

	// ByteContent returns the written bits, zero-padded to the next octet.
	ByteContent() []byte
}

// Reader is the read-side mirror of Writer.
type Reader interface {
	// ReadBit reads a single bit.
	ReadBit() (bool, error)

	// ReadConstrainedInteger is the mirror of WriteConstrainedInteger.
	ReadConstrainedInteger(lower, upper int64) (int64, error)

	// ReadNormallySmallNonNegativeInteger is the mirror of
	// WriteNormallySmallNonNegativeInteger.
	ReadNormallySmallNonNegativeInteger() (uint64, error)

	// ReadUnconstrainedInteger is the mirror of WriteUnconstrainedInteger.
	// A decoded length determinant greater than 8 octets is
	// UnsupportedOperation.
	ReadUnconstrainedInteger() (uint64, error)

	// ReadLengthDeterminant is the mirror of WriteLengthDeterminant.
	ReadLengthDeterminant() (uint64, error)

	// ReadBitString reads bitLength bits into dst starting at bitOffset.
	// dst must have room for bitOffset+bitLength bits.
	ReadBitString(dst []byte, bitOffset, bitLength int) error

	// ReadBitStringTillEnd fills dst from bitOffset through its last bit.
	ReadBitStringTillEnd(dst []byte, bitOffset int) error

	// ReadOctetStringBounded is the mirror of WriteOctetStringBounded.
	ReadOctetStringBounded(lower, upper uint64) ([]byte, error)

	// ReadOctetStringUnbounded is the mirror of WriteOctetStringUnbounded.
	ReadOctetStringUnbounded() ([]byte, error)

	// ReadUTF8String is the mirror of WriteUTF8String. A decoded payload
	// that is not valid UTF-8 is InvalidUtf8String.
	ReadUTF8String() (string, error)

	// ReadChoiceIndex is the mirror of WriteChoiceIndex.
	ReadChoiceIndex(variantCount int) (int, error)

	// ReadExtensibleChoiceIndex is the mirror of WriteExtensibleChoiceIndex.
	ReadExtensibleChoiceIndex(rootCount int) (int, error)

	// ReadSubString reads a length-determinant-prefixed run of octets and
	// returns a fresh Reader positioned at its start, for the caller to
	// parse independently.
	ReadSubString() (Reader, error)

	// BitsRemaining returns the number of unread bits still available.
	BitsRemaining() uint64
}
