package dbg

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names, such as the labels drawn
// on triangles in debug renders. It leaks memory, but names are generated
// lazily, so it costs nothing unless you're actually using it.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable name for obj within this process. obj must be a
// pointer, map, or other nillable value.
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := capitalize(petname.Adjective()) + capitalize(petname.Name())
	memo[obj] = r
	return r
}

// Forget drops every generated name.
func Forget() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
