package bincoder

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const gettysburg = `Four score and seven years ago our fathers brought forth on this continent, a new nation, conceived in Liberty, and dedicated to the proposition that all men are created equal.
Now we are engaged in a great civil war, testing whether that nation, or any nation so conceived and so dedicated, can long endure. We are met on a great battle-field of that war. We have come to dedicate a portion of that field, as a final resting place for those who here gave their lives that that nation might live. It is altogether fitting and proper that we should do this.
`

func compress(t *testing.T, data []byte, p Properties) []byte {
	r := require.New(t)

	var out bytes.Buffer
	w, err := NewWriter(&out, p)
	r.NoError(err)

	n, err := w.Write(data)
	r.NoError(err)
	r.Equal(len(data), n)
	r.Equal(int64(len(data)), w.Written())
	r.NoError(w.Close())

	return out.Bytes()
}

func TestWriterReaderRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	random := make([]byte, 4096)
	rnd.Read(random)

	testCases := []struct {
		name string

		data []byte
		p    Properties
	}{
		{
			name: "text_default",
			data: []byte(strings.Repeat(gettysburg, 4)),
			p:    DefaultProperties(),
		},
		{
			name: "text_no_context",
			data: []byte(gettysburg),
			p:    Properties{Inertia: 5, ContextBits: 0},
		},
		{
			name: "text_full_context",
			data: []byte(gettysburg),
			p:    Properties{Inertia: 3, ContextBits: 8},
		},
		{
			name: "random",
			data: random,
			p:    DefaultProperties(),
		},
		{
			name: "zeros",
			data: make([]byte, 10000),
			p:    Properties{Inertia: 2, ContextBits: 1},
		},
		{
			name: "empty",
			data: nil,
			p:    DefaultProperties(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := require.New(t)

			compressed := compress(t, tc.data, tc.p)

			reader, err := NewReader(bytes.NewReader(compressed), int64(len(tc.data)), tc.p)
			r.NoError(err)

			decompressed, err := io.ReadAll(reader)
			r.NoError(err)
			r.Equal(len(tc.data), len(decompressed))
			if len(tc.data) > 0 {
				r.Equal(tc.data, decompressed)
			}

			t.Logf("%d -> %d bytes", len(tc.data), len(compressed))
		})
	}
}

func TestWriterCompressesText(t *testing.T) {
	data := []byte(strings.Repeat(gettysburg, 8))
	compressed := compress(t, data, DefaultProperties())

	require.Less(t, len(compressed), len(data)*3/4)
}

func TestWriterBuffersPlainWriter(t *testing.T) {
	r := require.New(t)

	data := []byte(gettysburg)
	want := compress(t, data, DefaultProperties())

	// bytes.Buffer hidden behind a plain io.Writer.
	var out bytes.Buffer
	w, err := NewWriter(struct{ io.Writer }{&out}, DefaultProperties())
	r.NoError(err)

	for _, chunk := range [][]byte{data[:10], data[10:100], data[100:]} {
		_, err = w.Write(chunk)
		r.NoError(err)
	}
	r.NoError(w.Close())
	r.Equal(want, out.Bytes())

	// And read it back through a plain io.Reader.
	reader, err := NewReader(struct{ io.Reader }{bytes.NewReader(want)}, int64(len(data)), DefaultProperties())
	r.NoError(err)

	got, err := io.ReadAll(bufio.NewReaderSize(reader, 16))
	r.NoError(err)
	r.Equal(data, got)
}

func TestWriterClose(t *testing.T) {
	r := require.New(t)

	w, err := NewWriter(&bytes.Buffer{}, DefaultProperties())
	r.NoError(err)

	r.NoError(w.Close())
	r.ErrorIs(w.Close(), errAlreadyClosed)

	_, err = w.Write([]byte("x"))
	r.ErrorIs(err, errAlreadyClosed)
}

func TestStreamIncorrectProperties(t *testing.T) {
	testCases := []struct {
		name string

		p Properties
	}{
		{name: "zero_inertia", p: Properties{Inertia: 0, ContextBits: 3}},
		{name: "huge_inertia", p: Properties{Inertia: 32, ContextBits: 3}},
		{name: "too_many_context_bits", p: Properties{Inertia: 4, ContextBits: 9}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := require.New(t)

			r.ErrorIs(tc.p.Validate(), ErrIncorrectProperties)

			_, err := NewWriter(&bytes.Buffer{}, tc.p)
			r.ErrorIs(err, ErrIncorrectProperties)

			_, err = NewReader(bytes.NewReader(nil), 1, tc.p)
			r.ErrorIs(err, ErrIncorrectProperties)
		})
	}

	_, err := NewReader(bytes.NewReader(nil), -1, DefaultProperties())
	require.ErrorIs(t, err, ErrIncorrectProperties)

	_, err = NewReader(nil, 1, DefaultProperties())
	require.ErrorIs(t, err, ErrUnreadableSource)
}

type readCloserMock struct {
	mock.Mock
	io.Reader
}

func (m *readCloserMock) Close() error {
	return m.Called().Error(0)
}

func TestReadCloser(t *testing.T) {
	r := require.New(t)

	data := []byte(gettysburg)
	compressed := compress(t, data, DefaultProperties())

	src := &readCloserMock{Reader: bytes.NewReader(compressed)}
	src.On("Close").Return(nil).Once()

	rc, err := NewReadCloser(src, int64(len(data)), DefaultProperties())
	r.NoError(err)

	got, err := io.ReadAll(rc)
	r.NoError(err)
	r.Equal(data, got)

	r.NoError(rc.Close())
	src.AssertExpectations(t)

	r.ErrorIs(rc.Close(), errAlreadyClosed)
	_, err = rc.Read(make([]byte, 1))
	r.ErrorIs(err, errAlreadyClosed)
}

func TestReadCloserCloseError(t *testing.T) {
	r := require.New(t)
	errClose := errors.New("close failed")

	src := &readCloserMock{Reader: bytes.NewReader(nil)}
	src.On("Close").Return(errClose)

	rc, err := NewReadCloser(src, 0, DefaultProperties())
	r.NoError(err)

	r.ErrorIs(rc.Close(), errClose)
}

// goos: linux
// goarch: amd64
// pkg: github.com/kulaginds/bincoder

func BenchmarkWriter(b *testing.B) {
	data := []byte(strings.Repeat(gettysburg, 64))

	var out bytes.Buffer

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		out.Reset()

		w, err := NewWriter(&out, DefaultProperties())
		if err != nil {
			b.Fatal(err)
		}
		if _, err = w.Write(data); err != nil {
			b.Fatal(err)
		}
		if err = w.Close(); err != nil {
			b.Fatal(err)
		}
		b.SetBytes(int64(len(data)))
	}
}

func BenchmarkReader(b *testing.B) {
	data := []byte(strings.Repeat(gettysburg, 64))

	var out bytes.Buffer
	w, err := NewWriter(&out, DefaultProperties())
	if err != nil {
		b.Fatal(err)
	}
	if _, err = w.Write(data); err != nil {
		b.Fatal(err)
	}
	if err = w.Close(); err != nil {
		b.Fatal(err)
	}
	compressed := out.Bytes()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r, err := NewReader(bytes.NewReader(compressed), int64(len(data)), DefaultProperties())
		if err != nil {
			b.Fatal(err)
		}

		n, err := io.Copy(io.Discard, r)
		if err != nil {
			b.Fatal(err)
		}
		b.SetBytes(n)
	}
}
