// Command erplog converts ERP event logs between their ASCII and binary
// representations.
package main

import "github.com/erptools/erplog/internal/cli"

func main() {
	cli.Execute()
}
