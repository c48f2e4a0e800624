// Package sql provides the SQL queryset used by the rulefilter backend:
// a composable SELECT builder with dialect-aware quoting and placeholders,
// predicate constructors, and a thin driver for executing built queries.
//
// # Selectors
//
// A Selector is an unevaluated query handle. Filtering narrows it without
// executing it:
//
//	s := sql.Dialect(dialect.Postgres).
//	    Select("id", "name").
//	    From("users").
//	    Where(sql.EQ("status", "active"))
//
//	query, args := s.Query()
//	// SELECT "id", "name" FROM "users" WHERE "status" = $1
//
// # Predicates
//
//	sql.EQ("name", "john")           // name = 'john'
//	sql.NEQ("status", "deleted")     // status <> 'deleted'
//	sql.GT("age", 18)                // age > 18
//	sql.Contains("name", "john")     // name LIKE '%john%'
//	sql.HasPrefix("email", "admin")  // email LIKE 'admin%'
//	sql.IsNull("deleted_at")         // deleted_at IS NULL
//	sql.In("status", "a", "b")       // status IN ('a', 'b')
//
// Predicates compose with And, Or and Not.
//
// # Execution
//
//	drv, err := sql.Open(dialect.SQLite, ":memory:")
//	...
//	rows := &sql.Rows{}
//	query, args := s.Query()
//	err = drv.Query(ctx, query, args, rows)
package sql
