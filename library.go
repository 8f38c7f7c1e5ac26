package highlight

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownDirective is returned by Library.Compile when no
	// constructor is registered under the requested name.
	ErrUnknownDirective = errors.New("unknown directive")
)

// Constructor builds a compiled Directive from a configuration, a captured
// block, and the raw option tokens following the directive's name.
type Constructor func(cfg Config, block Block, options ...string) *Directive

// Library maps directive names to their constructors, so a host engine that
// meets directives by name while parsing a template can compile them. The
// standard names "highlight_here" and "highlight_here_parent" are registered
// by NewLibrary; hosts can register their own variants alongside them.
//
// A Library can safely be used by multiple goroutines.
type Library struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewLibrary returns a Library with the two standard directives registered.
// A Library must be instantiated through NewLibrary, its empty value is not
// usable.
func NewLibrary() *Library {
	return &Library{
		constructors: map[string]Constructor{
			"highlight_here":        NewHighlightHere,
			"highlight_here_parent": NewHighlightHereParent,
		},
	}
}

// Register stores a constructor under name, replacing any constructor already
// registered there.
func (l *Library) Register(name string, constructor Constructor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.constructors[name] = constructor
}

// Compile builds the directive registered under name. It returns
// ErrUnknownDirective when the name isn't registered.
func (l *Library) Compile(name string, cfg Config, block Block, options ...string) (*Directive, error) {
	l.mu.RLock()
	constructor, ok := l.constructors[name]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("error compiling %q: %w", name, ErrUnknownDirective)
	}
	return constructor(cfg, block, options...), nil
}
