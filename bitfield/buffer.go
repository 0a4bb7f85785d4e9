// Copyright 2025 go-bitfield Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitfield

// Buffer is the capability contract shared by the memory access strategies:
// a two-word view of a position in a word array that can move forward.
// After any sequence of non-negative advances totalling k words, Curr must
// equal the word at the original index plus k and Next the word after it
// while that word exists. The trailing Padding word of the backing array
// keeps Next in bounds for every position inside the stream; once the
// window reaches the padding word itself the stream is exhausted and only
// Curr remains meaningful.
type Buffer[T Word] interface {
	Curr() T
	Next() T
	Advance(words int)
}

// DirectBuffer indexes the backing array on every access. Minimal state; may
// re-read memory redundantly across consecutive calls.
type DirectBuffer[T Word] struct {
	words []T
}

// NewDirectBuffer returns a DirectBuffer positioned at words[0].
func NewDirectBuffer[T Word](words []T) *DirectBuffer[T] {
	return &DirectBuffer[T]{words: words}
}

func (b *DirectBuffer[T]) Curr() T { return b.words[0] }

func (b *DirectBuffer[T]) Next() T { return b.words[1] }

func (b *DirectBuffer[T]) Advance(words int) { b.words = b.words[words:] }

// CachedBuffer retains the last two words fetched, so a sequential walk
// issues one load per word advanced instead of two loads per access.
type CachedBuffer[T Word] struct {
	words  []T
	b0, b1 T
}

// NewCachedBuffer returns a CachedBuffer positioned at words[0].
// words must hold at least two words.
func NewCachedBuffer[T Word](words []T) *CachedBuffer[T] {
	return &CachedBuffer[T]{words: words, b0: words[0], b1: words[1]}
}

func (b *CachedBuffer[T]) Curr() T { return b.b0 }

func (b *CachedBuffer[T]) Next() T { return b.b1 }

// Advance slides the window. Advancing by one shifts the cached next word
// into place and issues exactly one new load; larger steps reload both.
// Landing on the padding word ends the stream: the word past it is never
// observed by a caller with fields left to read, so the cached next view
// becomes zero instead of a read past the array.
func (b *CachedBuffer[T]) Advance(words int) {
	switch words {
	case 0:
	case 1:
		b.words = b.words[1:]
		b.b0 = b.b1
		b.b1 = 0
		if len(b.words) > 1 {
			b.b1 = b.words[1]
		}
	default:
		b.words = b.words[words:]
		b.b0 = b.words[0]
		b.b1 = 0
		if len(b.words) > 1 {
			b.b1 = b.words[1]
		}
	}
}
