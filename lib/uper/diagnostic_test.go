package uper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnosticWriterDelegatesAndRecords(t *testing.T) {
	d := NewDiagnosticWriter(NewWriter())
	require.NoError(t, d.WriteConstrainedInteger(2, 1, 4))
	require.NoError(t, d.WriteUTF8String("ok"))

	require.Greater(t, d.BitLen(), uint64(2))
	require.Len(t, d.Trace(), 2)
	require.Contains(t, d.Trace()[0], "write_constrained_integer")
	require.Contains(t, d.Trace()[1], "write_utf8_string")
}

func TestDiagnosticReaderDelegatesAndRecords(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteConstrainedInteger(2, 1, 4))

	r, err := NewReader(w.ByteContent(), w.BitLen())
	require.NoError(t, err)
	d := NewDiagnosticReader(r)

	v, err := d.ReadConstrainedInteger(1, 4)
	require.NoError(t, err)
	require.EqualValues(t, 2, v)
	require.Len(t, d.Trace(), 1)
	require.Contains(t, d.Trace()[0], "read_constrained_integer")
}

func TestDiagnosticWriterWrapsSubString(t *testing.T) {
	d := NewDiagnosticWriter(NewWriter())
	err := d.WriteSubString(func(sub Writer) error {
		return sub.WriteConstrainedInteger(1, 0, 3)
	})
	require.NoError(t, err)
	require.Contains(t, d.Trace()[0], "write_substring(begin)")
	require.Contains(t, d.Trace()[len(d.Trace())-1], "write_substring(end)")
}
