// Package param enumerates Cartesian products of finite ordered domains
// without materializing them.
//
// What:
//
//   - Param[T]: the capability shared by every parameter: Iter (fresh
//     restartable Sequence), Len (cardinality), Rand (uniform draw).
//   - Values[T]: the leaf, a finite ordered list.
//   - Product[A,B], Product3[A,B,C], ProductN[T]: composites over the product
//     of their components. A composite is a Param, so composites nest to any
//     depth.
//   - Sequence[T]: single-cursor lazy producer with Reset.
//
// Order:
//
// Composites advance like an odometer. The last component is the
// least-significant digit: it moves on every Next; when it runs out it is
// rewound and the next component to the left advances by one.
//
//	A=[1,2]  B=[x,y]
//	A×B  →  (1,x) (1,y) (2,x) (2,y)
//
// Output index k of A×B is (A[k / Len(B)], B[k % Len(B)]). At exposes that
// mapping directly for indexable trees.
//
// State:
//
// Parameters are immutable templates; every mutable bit of an enumeration
// (component sequences, cached current values, finished flag) lives in the
// Sequence. Many sequences over one parameter tree run independently, on one
// goroutine each, with no locking. Reset rewinds a sequence in place.
//
// Errors:
//
//   - ErrEmptyDomain: empty leaf, or a component with Len() < 1.
//   - ErrNilParam / ErrNoComponents: bad composite inputs.
//   - ErrCardinalityOverflow: the product does not fit into an int.
//   - ErrIndexOutOfRange / ErrNotIndexed: At failures.
//   - ErrBrokenContract: root of the *ContractError panic raised when a
//     component sequence fails to yield a value its Len guarantees. Only a
//     faulty custom Param can trigger it.
//
// Complexity:
//
//   - Iter: O(N) pulls for N components (recursively for nested composites).
//   - Next: amortized O(1) pulls, worst case O(N) on a full carry.
//   - Reset: O(N), no reallocation.
//   - Rand: O(number of leaves).
package param
