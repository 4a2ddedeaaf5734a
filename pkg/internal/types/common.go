package types

// ComponentMetadata identifies a pipeline component in log lines and metrics.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Component class, e.g. "MODEL", "SOLVER_BRIDGE".
	Name string // Optional human-readable name.
}

// Option configures a component of type T at construction time.
type Option[T any] func(T)
