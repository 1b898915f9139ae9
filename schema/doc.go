// Package schema extracts the persistence schema of a record type.
//
// The package is the front half of the sqlbinder pipeline. It knows nothing
// about Go syntax or code emission: callers hand it a [Decl] (a type name and
// its fields in declaration order, each with its raw struct tag) and get back
// a [Struct] describing the effective field set used by every generated
// accessor and SQL builder.
//
// # Directives
//
// Field directives live under the "sqlbinder" struct-tag key:
//
//	type Skipper struct {
//	    Name           string
//	    Age            uint32 `sqlbinder:"skip"`
//	    Sex            string `json:"sex" sqlbinder:"skip"`
//	    LifeExpectancy uint32 `sqlbinder:"rename=life_expectancy"`
//	}
//
// Tags under other keys are ignored. Any other directive under the key, or a
// malformed skip/rename, is rejected with an [*AttributeError].
//
// When a field carries more than one directive only the first one takes
// effect; the rest are still validated.
//
// # Table names
//
// [Snake] converts the type name to the default table name:
//
//	schema.Snake("ThisIsStructName") // "this_is_struct_name"
//	schema.Snake("HTTPServer")       // "h_t_t_p_server"
//
// Uppercase runs are not treated as acronyms.
package schema
