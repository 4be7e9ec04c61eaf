// Package libdiff computes structural differences between two value trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//
// Each Change names the path of the affected node, in the tree it was
// found in, and carries the nodes on either side.  List elements and
// record fields are aligned before comparison, so an insertion in the
// middle of a list is reported as one Insert rather than a cascade of
// replacements.
//
// # Related Packages
//
//   - github.com/signadot/go-syrup/ir - value tree and paths
package libdiff
