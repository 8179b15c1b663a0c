package writer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/statkit/statblock"
)

type stubWriter struct {
	name string
}

func (s *stubWriter) Name() string { return s.name }

func (s *stubWriter) Write(sb *statblock.Statblock) ([]byte, error) {
	return []byte(sb.Name), nil
}

func TestRegisterAndNew(t *testing.T) {
	Register("stub", func(opts Options) (Writer, error) {
		return &stubWriter{name: "stub"}, nil
	})
	defer Unregister("stub")

	assert.True(t, IsRegistered("stub"))
	assert.Contains(t, Available(), "stub")

	w, err := New("stub", Options{})
	require.NoError(t, err)
	out, err := w.Write(&statblock.Statblock{Name: "Ogre"})
	require.NoError(t, err)
	assert.Equal(t, "Ogre", string(out))
}

func TestRegister_DuplicatePanics(t *testing.T) {
	factory := func(opts Options) (Writer, error) { return &stubWriter{name: "dup"}, nil }
	Register("dup", factory)
	defer Unregister("dup")

	assert.Panics(t, func() { Register("dup", factory) })
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("docx", Options{})
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Contains(t, err.Error(), "docx")
}

func TestNew_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("broken", func(opts Options) (Writer, error) { return nil, boom })
	defer Unregister("broken")

	_, err := New("broken", Options{})
	assert.True(t, errors.Is(err, boom))

	var werr *Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "broken", werr.Format)
	assert.Equal(t, "create", werr.Op)
	assert.Equal(t, "broken create: boom", werr.Error())
}

func TestAvailable_Sorted(t *testing.T) {
	for _, name := range []string{"zeta", "alpha"} {
		Register(name, func(opts Options) (Writer, error) { return &stubWriter{}, nil })
		defer Unregister(name)
	}
	assert.Equal(t, []string{"alpha", "zeta"}, Available())
}

func TestWriteError(t *testing.T) {
	assert.NoError(t, WriteError("yaml", nil))
	err := WriteError("yaml", ErrNilStatblock)
	assert.True(t, errors.Is(err, ErrNilStatblock))
}
