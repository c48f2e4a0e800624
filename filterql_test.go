package filterql_test

import (
	"context"

	"github.com/taobojlen/filterql"
)

// stubBackend satisfies filterql.Backend for tests that do not need a real
// filter engine.
type stubBackend struct{}

func (stubBackend) Name() string { return "stub" }

// testRegistry returns a fresh registry with a backend installed, isolated
// from the package-level default.
func testRegistry() *filterql.Registry {
	return filterql.NewRegistry(stubBackend{})
}

// stubSpec is a scriptable specification that records how it is used.
type stubSpec struct {
	name  string
	order []string
	kinds map[string]filterql.Kind

	fs      *stubFilterset
	called  bool
	gotData filterql.Data
	gotQS   filterql.Queryset
}

func (s *stubSpec) Name() string     { return s.name }
func (s *stubSpec) Fields() []string { return s.order }

func (s *stubSpec) Rule(field string) (filterql.Kind, bool) {
	k, ok := s.kinds[field]
	return k, ok
}

func (s *stubSpec) Filterset(data filterql.Data, qs filterql.Queryset) filterql.Filterset {
	s.called = true
	s.gotData = data
	s.gotQS = qs
	return s.fs
}

// stubFilterset reports a scripted validation result.
type stubFilterset struct {
	valid bool
	errs  filterql.FieldErrors
	out   filterql.Queryset
}

func (fs *stubFilterset) IsValid(context.Context) bool { return fs.valid }
func (fs *stubFilterset) Errors() filterql.FieldErrors { return fs.errs }
func (fs *stubFilterset) Queryset() filterql.Queryset  { return fs.out }

// userSpec returns the specification used across synthesis tests.
func userSpec() *stubSpec {
	return &stubSpec{
		name:  "UserFilter",
		order: []string{"name", "is_active", "group_ids"},
		kinds: map[string]filterql.Kind{
			"name":      filterql.KindChar,
			"is_active": filterql.KindBool,
			"group_ids": filterql.KindModelMultiChoice,
		},
	}
}
