package collections

import (
	"fmt"
	"sort"
	"sync"
)

// MacroFunc is a named, runtime-registered operation on a collection.
//
// Macros work on Collection[any] so that one registration serves every
// Collection[V]; [Collection.Macro] boxes the receiver before the call.
// Arguments are passed through untouched and the macro decides how to
// interpret them.
type MacroFunc func(c *Collection[any], args ...any) (any, error)

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry, replacing any
// macro already registered under that name. Safe for concurrent use.
//
//	collections.RegisterMacro("evens", func(c *collections.Collection[any], _ ...any) (any, error) {
//	    return c.Filter(func(v any, _ collections.Key) bool { return v.(int)%2 == 0 }), nil
//	})
//
//	res, _ := collections.Of(1, 2, 3, 4).Macro("evens") // {1:2, 3:4}
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// Macros returns the registered macro names in ascending order.
func Macros() []string {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	names := make([]string, 0, len(macroRegistry.macros))
	for name := range macroRegistry.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with c and args.
// Returns (nil, ErrMacroNotFound) if no macro is registered under name.
func CallMacro(name string, c *Collection[any], args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(c, args...)
}

// Macro calls the named registered macro on a boxed copy of c.
func (c *Collection[V]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, Box(c), args...)
}
