package commands

import (
	"context"
	"strings"

	"github.com/megachinese/bot/internal/bot/interfaces"
)

// HandlerFunc handles one prefixed command. Args exclude the command name.
type HandlerFunc func(ctx context.Context, msg *interfaces.Message, args []string) error

// Registry maps command names and aliases to handlers.
type Registry struct {
	handlers map[string]HandlerFunc
	names    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]HandlerFunc),
	}
}

// Register binds a handler to a primary name and its aliases. Names are case-insensitive.
func (r *Registry) Register(handler HandlerFunc, name string, aliases ...string) {
	r.names = append(r.names, strings.ToLower(name))

	for _, n := range append([]string{name}, aliases...) {
		r.handlers[strings.ToLower(n)] = handler
	}
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (HandlerFunc, bool) {
	handler, ok := r.handlers[strings.ToLower(name)]
	return handler, ok
}

// Names returns the primary command names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}
