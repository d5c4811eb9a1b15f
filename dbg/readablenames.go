package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arena handles (or anything else comparable) into random
// readable names. Raw handle values are just small integers, and a wall of
// "edge 17 face 9 edge 23" is much harder to eyeball in debug output than
// distinguishable names. Names are memoized per typed value, so EdgeID(3)
// and FaceID(3) get different names. It flagrantly leaks memory, but the
// names are generated lazily, so that only matters if you're actually
// debugging.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

// Handles implement Valid; invalid sentinels all render as Ø.
type validator interface {
	Valid() bool
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v, ok := obj.(validator); ok && !v.Valid() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
