package container

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/memforge/memforge/mem"
)

// String is an immutable UTF-8 string whose bytes live in an allocator's
// buffer. It is valid as long as the backing block is; a clear or pop that
// retreats past the block leaves the String dangling.
type String struct {
	buf []byte
}

// NewString copies s into memory allocated from a.
func NewString(a mem.Allocator, s string) (String, error) {
	if len(s) == 0 {
		return String{}, nil
	}
	buf, _, err := mem.Alloc[byte](a, len(s))
	if err != nil {
		return String{}, err
	}
	copy(buf, s)
	return String{buf: buf}, nil
}

// StringFromUTF16LE decodes raw UTF-16 little-endian bytes into an
// allocator-backed UTF-8 string. Raw binary formats (and anything
// Windows-shaped) store names this way.
func StringFromUTF16LE(a mem.Allocator, raw []byte) (String, error) {
	if len(raw)%2 != 0 {
		return String{}, fmt.Errorf("container: utf-16 input has odd length %d", len(raw))
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := dec.Bytes(raw)
	if err != nil {
		return String{}, fmt.Errorf("container: decode utf-16le: %w", err)
	}
	return newStringBytes(a, decoded)
}

// StringFromWindows1252 decodes raw Windows-1252 (Latin-1 superset) bytes
// into an allocator-backed UTF-8 string. Pure ASCII input takes a fast
// path without the decoder.
func StringFromWindows1252(a mem.Allocator, raw []byte) (String, error) {
	if isASCII(raw) {
		return newStringBytes(a, raw)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return String{}, fmt.Errorf("container: decode windows-1252: %w", err)
	}
	return newStringBytes(a, decoded)
}

func newStringBytes(a mem.Allocator, b []byte) (String, error) {
	if len(b) == 0 {
		return String{}, nil
	}
	buf, _, err := mem.Alloc[byte](a, len(b))
	if err != nil {
		return String{}, err
	}
	copy(buf, b)
	return String{buf: buf}, nil
}

// Data returns the raw bytes.
func (s String) Data() []byte { return s.buf }

// Len returns the byte length.
func (s String) Len() int { return len(s.buf) }

// String returns a zero-copy view of the bytes as a Go string. The result
// aliases allocator memory and shares the String's lifetime; copy it with
// strings.Clone if it must outlive the allocator.
func (s String) String() string {
	if len(s.buf) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(s.buf), len(s.buf))
}

// RuneCount returns the number of UTF-8 runes.
func (s String) RuneCount() int {
	return utf8.RuneCount(s.buf)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Builder accumulates bytes in allocator memory and produces a String.
// Like a DynArray of bytes, growth may leave dead copies behind in the
// allocator until it is cleared.
type Builder struct {
	arr *DynArray[byte]
}

// NewBuilder returns a Builder over a with the given initial capacity.
func NewBuilder(a mem.Allocator, capacity int) (*Builder, error) {
	arr, err := NewDynArray[byte](a, capacity)
	if err != nil {
		return nil, err
	}
	return &Builder{arr: arr}, nil
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int { return b.arr.Len() }

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) error {
	return b.arr.Push(c)
}

// WriteString appends the bytes of s.
func (b *Builder) WriteString(s string) error {
	return b.arr.PushMany([]byte(s))
}

// Write appends p, satisfying io.Writer's shape minus partial writes:
// on error nothing is reported as written.
func (b *Builder) Write(p []byte) (int, error) {
	if err := b.arr.PushMany(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// String returns the accumulated bytes as an allocator-backed String. The
// builder can keep appending afterwards, but growth may move the bytes, so
// take the String when building is done.
func (b *Builder) String() String {
	return String{buf: b.arr.Data()}
}
