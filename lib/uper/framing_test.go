package uper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-uper/uper/lib/errs"
)

func TestChoiceIndexRoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 2} {
		w := NewWriter()
		require.NoError(t, w.WriteChoiceIndex(idx, 3))

		r, err := NewReader(w.ByteContent(), w.BitLen())
		require.NoError(t, err)
		got, err := r.ReadChoiceIndex(3)
		require.NoError(t, err)
		require.Equal(t, idx, got)
	}
}

func TestChoiceIndexOutOfRange(t *testing.T) {
	w := NewWriter()
	err := w.WriteChoiceIndex(3, 3)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, errs.KindInvalidChoiceIndex, e.Kind)
}

func TestExtensibleChoiceIndexRootVariant(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteExtensibleChoiceIndex(1, 3))

	r, err := NewReader(w.ByteContent(), w.BitLen())
	require.NoError(t, err)
	got, err := r.ReadExtensibleChoiceIndex(3)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestExtensibleChoiceIndexExtensionVariant(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteExtensibleChoiceIndex(5, 3))

	r, err := NewReader(w.ByteContent(), w.BitLen())
	require.NoError(t, err)
	got, err := r.ReadExtensibleChoiceIndex(3)
	require.NoError(t, err)
	require.Equal(t, 5, got)
}

func TestSubStringRoundTrip(t *testing.T) {
	w := NewWriter()
	err := w.WriteSubString(func(sub Writer) error {
		if err := sub.WriteConstrainedInteger(2, 0, 3); err != nil {
			return err
		}
		return sub.WriteUTF8String("nested")
	})
	require.NoError(t, err)

	r, err := NewReader(w.ByteContent(), w.BitLen())
	require.NoError(t, err)
	sub, err := r.ReadSubString()
	require.NoError(t, err)

	v, err := sub.ReadConstrainedInteger(0, 3)
	require.NoError(t, err)
	require.EqualValues(t, 2, v)

	s, err := sub.ReadUTF8String()
	require.NoError(t, err)
	require.Equal(t, "nested", s)
	// 2 + 8 + 48 = 58 payload bits were padded to 8 octets; the 6 pad bits
	// are carried verbatim into the substring reader.
	require.EqualValues(t, 6, sub.BitsRemaining())
}

func TestOptionalFlagsWriterExhaustion(t *testing.T) {
	w := NewWriter()
	flags := BeginOptionalFlags(w, 2)
	require.NoError(t, flags.WriteFlag(true))
	require.NoError(t, flags.WriteFlag(false))
	require.Equal(t, 0, flags.Remaining())

	err := flags.WriteFlag(true)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, errs.KindOptFlagsExhausted, e.Kind)
}

func TestOptionalFlagsRoundTrip(t *testing.T) {
	w := NewWriter()
	wf := BeginOptionalFlags(w, 3)
	require.NoError(t, wf.WriteFlag(true))
	require.NoError(t, wf.WriteFlag(false))
	require.NoError(t, wf.WriteFlag(true))

	r, err := NewReader(w.ByteContent(), w.BitLen())
	require.NoError(t, err)
	rf := BeginOptionalFlagsRead(r, 3)
	a, err := rf.ReadFlag()
	require.NoError(t, err)
	b, err := rf.ReadFlag()
	require.NoError(t, err)
	c, err := rf.ReadFlag()
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, []bool{a, b, c})

	_, err = rf.ReadFlag()
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, errs.KindOptFlagsExhausted, e.Kind)
}
