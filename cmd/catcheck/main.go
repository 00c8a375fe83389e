// SPDX-License-Identifier: MIT

// Command catcheck checks workbooks of finite categories, functors and natural
// transformations, and prints canonical example categories.
//
// Usage:
//
//	catcheck check lesson.yaml [--format json] [--strict] [--no-suggestions]
//	catcheck example ordinal 4 > ordinal.yaml
//
// Exit codes: 0 valid, 1 invalid, 2 usage, configuration or I/O error.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
