package gen

import (
	"github.com/dave/jennifer/jen"
)

const (
	runtimePkg = "github.com/syssam/sqlbinder"
	sqlPkg     = "database/sql"
	recv       = "_e"
)

// genBinder renders the binder file of t.
func (g *Graph) genBinder(t *Type) *jen.File {
	f := jen.NewFile(g.Package)
	if g.Header != "" {
		f.HeaderComment(g.Header)
	}
	f.ImportName(runtimePkg, "sqlbinder")

	genColumns(f, t)
	genFieldInterface(f, t)
	for _, fd := range t.Fields {
		genFieldVariant(f, t, fd)
	}
	genBindFunc(f, t)
	genAccessors(f, t)
	genStatements(f, t)
	return f
}

// genColumns emits the column name registry of t.
func genColumns(f *jen.File, t *Type) {
	if len(t.Fields) == 0 {
		return
	}
	f.Commentf("Column names of %s, in declaration order.", t.Name)
	f.Const().DefsFunc(func(group *jen.Group) {
		for _, fd := range t.Fields {
			group.Id(t.ColumnConst(fd)).Op("=").Lit(fd.Column)
		}
	})
}

func genFieldInterface(f *jen.File, t *Type) {
	f.Commentf("%s is the value of one %s field. The set of implementations is", t.Interface(), t.Name)
	f.Commentf("closed: one %sField<Name> type per bound field.", t.Name)
	f.Type().Id(t.Interface()).Interface(
		jen.Qual(runtimePkg, "Field"),
		jen.Id(t.marker()).Params(),
	)
}

func genFieldVariant(f *jen.File, t *Type, fd *Field) {
	name := t.FieldType(fd)
	switch {
	case fd.clone != "":
		f.Commentf("%s holds a shallow clone of %s.%s.", name, t.Name, fd.Name)
	case fd.shared:
		f.Commentf("%s holds a copy of the %s.%s pointer. The value it points", name, t.Name, fd.Name)
		f.Comment("to is shared with the record.")
	default:
		f.Commentf("%s holds a copy of %s.%s.", name, t.Name, fd.Name)
	}
	f.Type().Id(name).Struct(
		jen.Id("Value").Add(fd.typ),
	)
	f.Comment("Column returns the exposed field name.")
	f.Func().Params(jen.Id(name)).Id("Column").Params().String().Block(
		jen.Return(jen.Id(t.ColumnConst(fd))),
	)
	f.Comment("Arg returns the field value.")
	f.Func().Params(jen.Id("_f").Id(name)).Id("Arg").Params().Any().Block(
		jen.Return(jen.Id("_f").Dot("Value")),
	)
	f.Comment("Bind appends the field value to the parameters of q.")
	f.Func().Params(jen.Id("_f").Id(name)).Id("Bind").Params(
		jen.Id("q").Op("*").Qual(runtimePkg, "Query"),
	).Op("*").Qual(runtimePkg, "Query").Block(
		jen.Return(jen.Id("q").Dot("Bind").Call(jen.Id("_f").Dot("Value"))),
	)
	f.Func().Params(jen.Id(name)).Id(t.marker()).Params().Block()
}

// genBindFunc emits the type switch over the closed variant set.
func genBindFunc(f *jen.File, t *Type) {
	f.Commentf("%s appends the value held by f to the parameters of q.", t.BindFunc())
	f.Func().Id(t.BindFunc()).Params(
		jen.Id("f").Id(t.Interface()),
		jen.Id("q").Op("*").Qual(runtimePkg, "Query"),
	).Op("*").Qual(runtimePkg, "Query").BlockFunc(func(body *jen.Group) {
		if len(t.Fields) == 0 {
			body.Return(jen.Id("q"))
			return
		}
		body.Switch(jen.Id("f").Op(":=").Id("f").Op(".").Parens(jen.Type())).BlockFunc(func(sw *jen.Group) {
			for _, fd := range t.Fields {
				sw.Case(jen.Id(t.FieldType(fd))).Block(
					jen.Return(jen.Id("q").Dot("Bind").Call(jen.Id("f").Dot("Value"))),
				)
			}
		})
		body.Return(jen.Id("q"))
	})
}

func genAccessors(f *jen.File, t *Type) {
	self := jen.Id(recv).Op("*").Id(t.Name)

	f.Comment("StructName returns the declared type name.")
	f.Func().Params(self.Clone()).Id("StructName").Params().String().Block(
		jen.Return(jen.Lit(t.Name)),
	)

	f.Comment("StructNameSnake returns the snake case type name, the default table name.")
	f.Func().Params(self.Clone()).Id("StructNameSnake").Params().String().Block(
		jen.Return(jen.Lit(t.Table)),
	)

	f.Comment("FieldNames returns the exposed field names, in declaration order.")
	f.Func().Params(self.Clone()).Id("FieldNames").Params().Index().String().Block(
		jen.Return(jen.Index().String().ValuesFunc(func(vals *jen.Group) {
			for _, fd := range t.Fields {
				vals.Id(t.ColumnConst(fd))
			}
		})),
	)

	f.Comment("FieldValues returns a snapshot of every bound field, in declaration order.")
	f.Func().Params(self.Clone()).Id("FieldValues").Params().Index().Id(t.Interface()).Block(
		jen.Return(jen.Index().Id(t.Interface()).ValuesFunc(func(vals *jen.Group) {
			for _, fd := range t.Fields {
				vals.Add(variantLit(t, fd))
			}
		})),
	)

	f.Comment("FieldValue returns a snapshot of the field exposed under name.")
	f.Func().Params(self.Clone()).Id("FieldValue").Params(jen.Id("name").String()).Params(
		jen.Id(t.Interface()),
		jen.Error(),
	).BlockFunc(func(body *jen.Group) {
		if len(t.Fields) > 0 {
			body.Switch(jen.Id("name")).BlockFunc(func(sw *jen.Group) {
				for _, fd := range t.Fields {
					sw.Case(jen.Id(t.ColumnConst(fd))).Block(
						jen.Return(variantLit(t, fd), jen.Nil()),
					)
				}
			})
		}
		body.Return(jen.Nil(), jen.Qual(runtimePkg, "NewFieldNotFoundError").Call(jen.Lit(t.Name), jen.Id("name")))
	})
}

func genStatements(f *jen.File, t *Type) {
	self := jen.Id(recv).Op("*").Id(t.Name)
	row := jen.Id(recv).Dot("binderRow").Call()
	for _, st := range []struct{ name, stmt string }{{"Insert", "INSERT"}, {"Update", "UPDATE"}} {
		opts := jen.Id("opts").Qual(runtimePkg, st.name+"Options")

		f.Commentf("%sQuery builds the %s statement for this %s without executing it.", st.name, st.stmt, t.Name)
		f.Func().Params(self.Clone()).Id(st.name+"Query").Params(opts.Clone()).Params(
			jen.Op("*").Qual(runtimePkg, "Query"),
			jen.Error(),
		).Block(
			jen.Return(jen.Qual(runtimePkg, "Build"+st.name).Call(row.Clone(), jen.Id("opts"))),
		)

		f.Commentf("%s executes the %s statement for this %s on ex.", st.name, st.stmt, t.Name)
		f.Func().Params(self.Clone()).Id(st.name).Params(
			jen.Id("ctx").Qual("context", "Context"),
			jen.Id("ex").Qual(runtimePkg, "Executor"),
			opts.Clone(),
		).Params(
			jen.Qual(sqlPkg, "Result"),
			jen.Error(),
		).Block(
			jen.Return(jen.Qual(runtimePkg, st.name).Call(jen.Id("ctx"), jen.Id("ex"), row.Clone(), jen.Id("opts"))),
		)
	}

	f.Func().Params(self.Clone()).Id("binderRow").Params().Qual(runtimePkg, "Row").Block(
		jen.Return(jen.Qual(runtimePkg, "Row").Values(jen.Dict{
			jen.Id("Table"):   jen.Lit(t.Table),
			jen.Id("Columns"): jen.Id(recv).Dot("FieldNames").Call(),
			jen.Id("Fields"):  jen.Qual(runtimePkg, "Fields").Call(jen.Id(recv).Dot("FieldValues").Call()),
		})),
	)
}

func variantLit(t *Type, fd *Field) *jen.Statement {
	value := jen.Id(recv).Dot(fd.Name)
	if fd.clone != "" {
		value = jen.Qual(fd.clone, "Clone").Call(value)
	}
	return jen.Id(t.FieldType(fd)).Values(jen.Dict{
		jen.Id("Value"): value,
	})
}
