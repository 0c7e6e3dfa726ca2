package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary objects into random readable names, which is
// helpful for telling lines and planes apart in debug output, where every
// TwoDLine looks like every other TwoDLine at a glance. Names are memoized,
// so the memo grows forever; this is debug tooling, not production state.

var (
	mu   sync.Mutex
	memo map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for obj within this process run.
// Pointers are keyed by identity; comparable values (lines, equation
// parameter structs) by value; everything else by its formatted string.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	key := obj
	if !v.Comparable() {
		key = fmt.Sprintf("%v", obj)
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

// title avoids strings.Title, which is deprecated; the petname word lists
// are ASCII, so uppercasing the first byte is enough.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
