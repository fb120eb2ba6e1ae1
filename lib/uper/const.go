package uper

// Length determinant boundaries (X.691 §11.9.4, spec §3). UPER never
// fragments: a determinant beyond maxLongLength is UnsupportedOperation.
const (
	maxShortLength = 127   // inclusive upper bound of the one-octet-prefix form
	maxLongLength  = 16383 // inclusive upper bound of the two-octet-prefix form
)

// normallySmallThreshold is the boundary between the 6-bit inline form and
// the unconstrained-integer escape of the normally-small encoding
// (X.691 §11.6).
const normallySmallThreshold = 63

// bitsPerByteInt is an untyped constant so it can be used in both int and
// uint64 bit-index arithmetic without repeated conversions.
const bitsPerByteInt = 8
