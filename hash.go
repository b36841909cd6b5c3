package seqs

import (
	"encoding/binary"
	"reflect"

	"github.com/cnf/structhash"
)

// HashValue computes a stable 32-bit hash for a single element value. It is
// content-based: two deeply equal values hash alike, regardless of identity.
// Arbitrary element types are supported by hashing the structhash digest of
// the value. A nil element hashes to 0.
//
// Containers combine element hashes positionally, so HashValue itself need
// not be order-sensitive.
func HashValue(v interface{}) uint32 {
	if v == nil {
		return 0
	}
	sum := structhash.Md5(v, 1)
	return binary.BigEndian.Uint32(sum[0:4])
}

// EqualValues reports deep equality of two element values. It is the
// element-level counterpart of the containers' structural Equals.
func EqualValues(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}
