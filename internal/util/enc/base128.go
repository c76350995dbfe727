package enc

// NOTE: This is a translation of base128.c from IODINE project into go.
/*
 * Copyright (c) 2006-2014 Erik Ekman <yarrick@kryo.se>,
 * 2006-2009 Bjorn Andersson <flex@kryo.se>
 * Mostly rewritten 2009 J.A.Bezemer@opensourcepartners.nl
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

import (
	"fmt"
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (
	// cb128 covers the 62 alphanumerics plus the printable top of
	// ISO-8859-1. Control characters and the bytes 254-255 never appear in
	// the output.
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"

	base128Invalid = 0xff
)

// cb128Invert maps a symbol back to its 7-bit value. Built once on startup,
// read-only afterwards.
var cb128Invert [256]byte

func init() {
	for i := range cb128Invert {
		cb128Invert[i] = base128Invalid
	}
	for i := 0; i < len(cb128); i++ {
		cb128Invert[cb128[i]] = byte(i)
	}
}

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

// Encode packs 7 bits into every output byte with a sliding bit window and
// then transliterates the 7-bit values through the symbol table.
func (b *Base128Encoder) Encode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src)+len(src)/7+1)

	whichBit := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// Take the current buffer and add the top bits of the current
		// value. The first round takes its first 7 bits.
		elem := bufByte | (val >> whichBit)
		dst = append(dst, elem)

		// Keep the remaining low bits and shift them up for the next round.
		bufByte = val & ((1 << whichBit) - 1)
		bufByte = bufByte << (7 - whichBit)

		if whichBit == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichBit = 0
		}

		whichBit++
	}

	// Dangling bits of a partial cycle take up one more symbol. A cycle
	// which ended exactly on a 7-byte boundary leaves nothing behind.
	if whichBit != 1 {
		dst = append(dst, bufByte)
	}

	return escape128(dst), nil
}

func (b *Base128Encoder) Decode(data []byte) ([]byte, error) {
	src, err := unescape128(data)
	if err != nil {
		return nil, err
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func escape128(src []byte) []byte {
	res := make([]byte, len(src))
	for i, v := range src {
		res[i] = cb128[v]
	}
	return res
}

func unescape128(src []byte) ([]byte, error) {
	res := make([]byte, len(src))
	for i, v := range src {
		x := cb128Invert[v]
		if x == base128Invalid {
			return nil, errors.Errorf("Invalid base128 symbol %q at offset %v", v, i)
		}
		res[i] = x
	}
	return res, nil
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}

func (b *Base128Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("aA-Aaahhh-Drink-mal-ein-J\344germeister-"),
		[]byte("aA-La-fl\373te-na\357ve-fran\347aise-est-retir\351-\340-Cr\350te"),
		[]byte(cb128),
	}
}
