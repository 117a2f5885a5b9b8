package dbnary

import (
	"compress/bzip2"
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// dropIllFormed is a transform.Transformer that copies valid UTF-8 and
// silently discards bytes that do not form a valid encoding.
type dropIllFormed struct{ transform.NopResetter }

func (dropIllFormed) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// LenientUTF8 wraps r so that ill-formed UTF-8 is dropped instead of
// surfacing as an error or as U+FFFD.
func LenientUTF8(r io.Reader) io.Reader {
	return transform.NewReader(r, dropIllFormed{})
}

// NewDumpReader returns a reader over the decompressed, lenient UTF-8 text
// of a bzip2 dump.
func NewDumpReader(compressed io.Reader) io.Reader {
	return LenientUTF8(bzip2.NewReader(compressed))
}
