package model

import (
	"bytes"
	"errors"
	"strings"
)

var (
	ErrNameRequired  = errors.New("document name is required")
	ErrBytesRequired = errors.New("document bytes are required")
)

// Document represents file content plus its identity (the file's base name).
// Fields are unexported so a Document cannot be changed after construction; use
// DocumentBuilder or NewDocument to create one.
type Document struct {
	name  string
	bytes []byte
}

// NullDocument returns the value used to signal "no document found".
// It is the zero Document and compares equal to any other zero Document.
func NullDocument() Document {
	return Document{}
}

// NewDocument builds a Document in one call. The byte slice is copied.
func NewDocument(name string, content []byte) (Document, error) {
	return NewDocumentBuilder().WithName(name).WithBytes(content).Build()
}

// Name returns the file's base name.
func (d Document) Name() string {
	return d.name
}

// Bytes returns a copy of the document content.
func (d Document) Bytes() []byte {
	if d.bytes == nil {
		return nil
	}
	out := make([]byte, len(d.bytes))
	copy(out, d.bytes)
	return out
}

// Size returns the content length in bytes.
func (d Document) Size() int {
	return len(d.bytes)
}

// IsNull reports whether d is the null document.
func (d Document) IsNull() bool {
	return d.Equal(NullDocument())
}

// Equal compares two documents structurally. A nil and an empty content are
// only considered equal when both documents are otherwise null.
func (d Document) Equal(other Document) bool {
	if d.name != other.name {
		return false
	}
	if (d.bytes == nil) != (other.bytes == nil) {
		return false
	}
	return bytes.Equal(d.bytes, other.bytes)
}

// String returns the document content as text.
func (d Document) String() string {
	return string(d.bytes)
}

// DocumentBuilder collects the required fields of a Document.
type DocumentBuilder struct {
	name     string
	content  []byte
	hasBytes bool
}

func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

func (b *DocumentBuilder) WithName(name string) *DocumentBuilder {
	b.name = name
	return b
}

// WithBytes sets the content. An empty, non-nil slice is a valid empty file.
func (b *DocumentBuilder) WithBytes(content []byte) *DocumentBuilder {
	if content == nil {
		b.content, b.hasBytes = nil, false
		return b
	}
	b.content = make([]byte, len(content))
	copy(b.content, content)
	b.hasBytes = true
	return b
}

// Build returns the Document or an error when name or bytes were not set.
func (b *DocumentBuilder) Build() (Document, error) {
	if strings.TrimSpace(b.name) == "" {
		return NullDocument(), ErrNameRequired
	}
	if !b.hasBytes {
		return NullDocument(), ErrBytesRequired
	}
	content := make([]byte, len(b.content))
	copy(content, b.content)
	return Document{name: b.name, bytes: content}, nil
}
