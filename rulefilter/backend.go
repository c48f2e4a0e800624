package rulefilter

import "github.com/taobojlen/filterql"

// backend identifies this package as the installed filter engine.
type backend struct{}

// Name returns the backend name.
func (backend) Name() string { return "rulefilter" }

func init() {
	filterql.RegisterBackend(backend{})
}

// Backend returns the rulefilter backend, for use with explicit
// filterql.Registry instances.
func Backend() filterql.Backend {
	return backend{}
}
