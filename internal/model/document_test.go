package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		builder *DocumentBuilder
		wantErr error
	}{
		{
			name:    "name and bytes set",
			builder: NewDocumentBuilder().WithName("report.csv").WithBytes(make([]byte, 5)),
		},
		{
			name:    "empty content is allowed",
			builder: NewDocumentBuilder().WithName("empty.txt").WithBytes([]byte{}),
		},
		{
			name:    "missing name",
			builder: NewDocumentBuilder().WithBytes([]byte("x")),
			wantErr: ErrNameRequired,
		},
		{
			name:    "whitespace name",
			builder: NewDocumentBuilder().WithName("  ").WithBytes([]byte("x")),
			wantErr: ErrNameRequired,
		},
		{
			name:    "missing bytes",
			builder: NewDocumentBuilder().WithName("a.txt"),
			wantErr: ErrBytesRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := tt.builder.Build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, doc.IsNull())
				return
			}
			require.NoError(t, err)
			assert.False(t, doc.IsNull())
		})
	}
}

func TestDocument_Immutable(t *testing.T) {
	src := []byte("hello")
	doc, err := NewDocument("a.txt", src)
	require.NoError(t, err)

	src[0] = 'j'
	assert.Equal(t, "hello", doc.String())

	out := doc.Bytes()
	out[0] = 'y'
	assert.Equal(t, "hello", doc.String())
	assert.Equal(t, 5, doc.Size())
	assert.Equal(t, "a.txt", doc.Name())
}

func TestDocument_Equal(t *testing.T) {
	a, _ := NewDocument("a.txt", []byte("hi"))
	b, _ := NewDocument("a.txt", []byte("hi"))
	c, _ := NewDocument("a.txt", []byte("ho"))
	empty, _ := NewDocument("a.txt", []byte{})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, empty.Equal(NullDocument()))
	assert.True(t, NullDocument().Equal(Document{}))
	assert.True(t, Document{}.IsNull())
	assert.False(t, empty.IsNull())
}

func TestWriteFileResult_HadError(t *testing.T) {
	assert.False(t, NewWriteFileResult().HadError())
	assert.False(t, WriteFileResult{}.HadError())

	res := NewWriteFileResult("first", "second")
	assert.True(t, res.HadError())
	assert.Equal(t, []string{"first", "second"}, res.ErrorMessages)
}
