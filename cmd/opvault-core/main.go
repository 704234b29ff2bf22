// Command opvault-core is the CLI entry point over the op-vault and
// agile-keychain readers in internal/.
package main

import "github.com/opvault-core/opvault-core/internal/cli"

// version is set via -ldflags "-X main.version=..." at release build time.
var version = "dev"

func main() {
	cli.Execute(version)
}
