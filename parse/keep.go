// SPDX-License-Identifier: MIT
package parse

type (
	// Kept holds raw bytes along with their position in the input.
	//
	// Start is the Context of the first byte, End the Context following the last one.
	Kept struct {
		Bytes []byte
		Start Context
		End   Context
	}

	keep struct {
		start Context
		bytes []byte
	}
)

// Keep obtains a Grammar returning its field unparsed, for a later ParseWithContext(g, k.Bytes,
// k.Start).
func Keep() Grammar[Kept] {
	return GrammarFunc[Kept](func(start Context) Parser[Kept] {
		return &keep{start: start, bytes: []byte{}}
	})
}

func (k *keep) Feed(b byte, _ Context) error {
	k.bytes = append(k.bytes, b)
	return nil
}

func (k *keep) End(ctx Context) (Kept, error) {
	return Kept{Bytes: k.bytes, Start: k.start, End: ctx}, nil
}

// String obtains the kept bytes as text.
func (k Kept) String() string { return string(k.Bytes) }
