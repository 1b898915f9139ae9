// Package gen synthesizes the binder file of every bound struct type.
//
// The pipeline is:
//
//	Go source (compiler/load)
//	        ↓
//	schema.Decl
//	        ↓
//	schema.Extract (directives, effective field set)
//	        ↓
//	Graph (one Type per struct)
//	        ↓
//	Generator (jennifer, one <snake>_binder.go per type)
//
// For a type Dog the generated file declares:
//
//   - DogColumn<Name> constants, the exposed field names
//   - DogField, a sealed interface, and one DogField<Name> carrier per field
//   - BindDogField, which binds any DogField to a sqlbinder.Query
//   - StructName, StructNameSnake, FieldNames, FieldValues and FieldValue
//   - InsertQuery, Insert, UpdateQuery and Update
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: a declaration that cannot be bound
//   - ConfigError: configuration errors
//   - GenerationError: rendering, formatting or writing failed
//
// Example:
//
//	cfg, err := gen.NewConfig(gen.WithTarget(dir), gen.WithPackage("zoo"))
//	if err != nil {
//	    return err
//	}
//	if err := gen.Generate(ctx, cfg, decls...); err != nil {
//	    if errors.Is(err, gen.ErrInvalidSchema) {
//	        // fix the struct declaration
//	    }
//	    return err
//	}
package gen
