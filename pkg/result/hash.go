package result

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const (
	okTag  = 0x01
	errTag = 0x02
)

// Hash returns a digest over the variant tag and the held payload's
// rendering. Equal results produce equal digests, and Ok(x) never collides
// with Err(x) on the tag byte alone.
func (r Result[T, E]) Hash() uint64 {
	d := xxhash.New()
	if r.isOk {
		d.Write([]byte{okTag})
		fmt.Fprintf(d, "%v", r.value)
	} else {
		d.Write([]byte{errTag})
		fmt.Fprintf(d, "%v", r.err)
	}
	return d.Sum64()
}
