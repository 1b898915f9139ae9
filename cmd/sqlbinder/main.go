// Command sqlbinder generates field registries, field enums and SQL
// builders for Go structs.
//
// It is usually run through go:generate:
//
//	//go:generate go run github.com/syssam/sqlbinder/cmd/sqlbinder
//
// which generates a <type>_binder.go file for every type in the package
// that carries the //sqlbinder:generate marker.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type appFlags struct {
	globalFlags

	generate cmdGenerate
	verify   cmdVerify
}

func main() {
	app := newApp()

	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newApp() *cobra.Command {
	c := &appFlags{}
	c.generate.global = &c.globalFlags
	c.verify.global = &c.globalFlags

	// The root command generates, so a bare go:generate line works.
	app := c.generate.Command()
	app.Use = "sqlbinder [packages]"
	app.SilenceUsage = true
	app.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}
	app.SetVersionTemplate("{{.Version}}\n")
	app.Version = version
	app.PersistentPreRunE = c.globalFlags.setup
	app.PersistentPostRunE = c.globalFlags.teardown

	c.globalFlags.AddFlags(app)

	sub := &cmdGenerate{global: &c.globalFlags}
	app.AddCommand(sub.Command())
	app.AddCommand(c.verify.Command())

	return app
}
