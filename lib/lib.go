package lib

import (
	"unicode/utf8"
	"unsafe"
)

const (
	toLowerTable = "\x00\x01\x02\x03\x04\x05\x06\a\b\t\n\v\f\r\x0e\x0f\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f !\"#$%&'()*+,-./0123456789:;<=>?@abcdefghijklmnopqrstuvwxyz[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~\u007f\x80\x81\x82\x83\x84\x85\x86\x87\x88\x89\x8a\x8b\x8c\x8d\x8e\x8f\x90\x91\x92\x93\x94\x95\x96\x97\x98\x99\x9a\x9b\x9c\x9d\x9e\x9f\xa0\xa1\xa2\xa3\xa4\xa5\xa6\xa7\xa8\xa9\xaa\xab\xac\xad\xae\xaf\xb0\xb1\xb2\xb3\xb4\xb5\xb6\xb7\xb8\xb9\xba\xbb\xbc\xbd\xbe\xbf\xc0\xc1\xc2\xc3\xc4\xc5\xc6\xc7\xc8\xc9\xca\xcb\xcc\xcd\xce\xcf\xd0\xd1\xd2\xd3\xd4\xd5\xd6\xd7\xd8\xd9\xda\xdb\xdc\xdd\xde\xdf\xe0\xe1\xe2\xe3\xe4\xe5\xe6\xe7\xe8\xe9\xea\xeb\xec\xed\xee\xef\xf0\xf1\xf2\xf3\xf4\xf5\xf6\xf7\xf8\xf9\xfa\xfb\xfc\xfd\xfe\xff"
)

// ToLowerBytes returns a copy of b with ASCII letters lowercased. Other
// bytes are copied unchanged and the input is never modified.
func ToLowerBytes(b []byte) []byte {
	res := make([]byte, len(b))
	for i := 0; i < len(b); i++ {
		res[i] = toLowerTable[b[i]]
	}
	return res
}

// ToByte returns the bytes backing s without copying. The result must not be modified.
func ToByte(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func FromByte(b []byte) string {
	p := unsafe.SliceData(b)
	return unsafe.String(p, len(b))
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimSpace slices off leading and trailing ASCII white space.
func TrimSpace(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

// IndexNonASCII reports the byte offset of the first non-ASCII rune in b
// together with that rune, or -1 when b is pure ASCII.
func IndexNonASCII(b []byte) (int, rune) {
	for i := 0; i < len(b); i++ {
		if b[i] >= utf8.RuneSelf {
			r, _ := utf8.DecodeRune(b[i:])
			return i, r
		}
	}
	return -1, 0
}

// Unique keeps the first occurrence of each element, in order.
func Unique[T comparable](slice []T) []T {
	result := make([]T, 0, len(slice))
	seen := make(map[T]struct{}, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	clear(seen)
	return result
}
