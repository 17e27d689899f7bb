package filter

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds named preset filters and resolves which filter a command
// should apply
type Manager struct {
	compiler Compiler
	filters  map[string]Filter
	fallback string
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithDefaultExpression sets the expression used when neither an explicit
// expression nor a preset is requested
func WithDefaultExpression(expression string) ManagerOption {
	return func(m *Manager) {
		m.fallback = expression
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewExprCompiler(WithCache(100)),
		filters:  make(map[string]Filter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterFilter registers a new preset or updates an existing one
func (m *Manager) RegisterFilter(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[name] = filter
	m.mu.Unlock()

	return nil
}

// RegisterFilters registers multiple presets at once. Nothing is registered
// unless every expression compiles.
func (m *Manager) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]Filter, len(filters))

	for _, name := range slices.Sorted(maps.Keys(filters)) {
		filter, err := m.compiler.Compile(filters[name])
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = filter
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// GetFilter returns a preset by name
func (m *Manager) GetFilter(name string) (Filter, bool) {
	m.mu.RLock()
	filter, exists := m.filters[name]
	m.mu.RUnlock()
	return filter, exists
}

// ListFilters returns all registered preset names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.filters))
}

// Resolve picks the filter to apply. Priority: explicit expression, then
// preset, then the default expression. A nil filter means no filtering.
func (m *Manager) Resolve(expression, preset string) (Filter, error) {
	if expression != "" {
		return m.compiler.Compile(expression)
	}

	if preset != "" {
		if filter, ok := m.GetFilter(preset); ok {
			return filter, nil
		}
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownPreset, preset)
	}

	if m.fallback != "" {
		return m.compiler.Compile(m.fallback)
	}

	return nil, nil
}
