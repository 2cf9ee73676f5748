// version.go implements the 'counterlab version' command.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/mod/semver"

	"github.com/czffzc/ConVulAgent/lab"
)

// versionCommand implements the 'counterlab version' command.
//
// Without flags it prints the tool version. With -at-least it exits
// non-zero when the tool is older than the requested version, so
// scripts can gate on a minimum release:
//
//	counterlab version -at-least v0.2.0 || echo "too old"
func versionCommand(args []string) {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	atLeast := fs.String("at-least", "",
		"fail unless the tool version is at least this semver (e.g. v0.2.0)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	fmt.Printf("counterlab version %s\n", lab.Version)

	if *atLeast == "" {
		return
	}

	ok, err := versionAtLeast(lab.Version, *atLeast)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "counterlab %s is older than required %s\n",
			lab.Version, *atLeast)
		os.Exit(1)
	}
}

// versionAtLeast reports whether the bare current version ("0.1.0")
// satisfies the requested minimum ("v0.2.0").
func versionAtLeast(current, want string) (bool, error) {
	if !semver.IsValid(want) {
		return false, fmt.Errorf("%q is not a valid semantic version (want e.g. v0.2.0)", want)
	}
	return semver.Compare("v"+current, want) >= 0, nil
}
