package filter

// Env is the set of variables a filter expression sees for one record.
type Env map[string]any

// Filter decides whether a record matches
type Filter interface {
	// Match evaluates the filter against a record environment
	Match(env Env) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (Filter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
