package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	cobra.EnablePrefixMatching = true
	version = resolveVersion(version)
}

// resolveVersion uses debug.ReadBuildInfo to replace "dev" with the actual
// module version when installed via `go install`.
var resolveVersion = func(v string) string {
	if v != "dev" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return v
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var osExit = os.Exit

func main() {
	osExit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status. Asking for help
// counts as a failed invocation.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	helpShown := false
	root := newRootCmd(stdin, stdout, &helpShown)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stderr)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil || helpShown {
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout io.Writer, helpShown *bool) *cobra.Command {
	root := &cobra.Command{
		Use:   "qnickname",
		Short: "Translate your real name into your QNickname",
		Long: "Asks for your name and prints your QNickname.\n" +
			"Use \"qnickname serve\" to run the chat bot instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runPrompt(stdin, stdout)
		},
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newOnboardCmd())
	root.AddCommand(newManifestCmd(stdout))
	root.AddCommand(newVersionCmd(stdout))
	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		*helpShown = true
		fmt.Fprint(c.ErrOrStderr(), c.UsageString())
	})
	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print version information",
		Args:    cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(stdout, "qnickname %s\n", version)
			if commit != "none" {
				fmt.Fprintf(stdout, "  commit: %s\n", commit)
			}
			if date != "unknown" {
				fmt.Fprintf(stdout, "  built:  %s\n", date)
			}
		},
	}
}
