// Command tplx is a small demo CLI around the tplx façade: it loads a TOML
// context file and renders a hand-built greeting template against it. It
// exists to give the façade a real caller, since no parser is wired in
// this module.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/eval"
	"github.com/dpotapov/tplx/tplx"
)

var contextFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tplx",
	Short: "Render a demo template against a TOML context",
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the built-in greeting template",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contextFile, "context", "c", "", "Path to a TOML context file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	var ctx *eval.RootContext
	if contextFile != "" {
		loaded, err := tplx.LoadContext(contextFile)
		if err != nil {
			return fmt.Errorf("loading context: %w", err)
		}
		ctx = loaded
	} else {
		ctx = eval.NewRootContext(document.Unit)
		if err := ctx.SetPath([]document.Document{document.String("name")}, document.String("world")); err != nil {
			return err
		}
	}

	greeting, err := eval.NewOperation("concat", eval.Operations["concat"],
		eval.NewLiteral(document.String("Hello, ")),
		eval.NewVariable("name"),
		eval.NewLiteral(document.String("!")),
	)
	if err != nil {
		return fmt.Errorf("building template: %w", err)
	}

	out, err := tplx.Render(greeting, ctx)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	fmt.Println(out)
	return nil
}
