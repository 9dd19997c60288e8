// Command openapiv3-filter-mcp runs the filtering engine as an MCP
// server over stdio.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sukkola/openapiv3-filter/internal/mcpserver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "openapiv3-filter-mcp: %v\n", err)
		os.Exit(1)
	}
}
