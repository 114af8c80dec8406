package main

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	mdformatmcp "github.com/gorewood/mdformat/internal/mcp"
	"github.com/gorewood/mdformat/internal/output"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var httpFlag bool
	var addrFlag string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio or HTTP transport)",
		Long: `Run mdformat as a Model Context Protocol (MCP) server.

By default the server speaks MCP over stdio. Configure it in your agent's
MCP settings:
  {
    "mcpServers": {
      "mdformat": {
        "command": "mdformat",
        "args": ["serve"]
      }
    }
  }

With --http the server listens for streamable HTTP clients instead. The
address is taken from --addr, then $PORT, then http_addr in config.yaml,
then :8080. GET /healthz reports server status.

Available tools: format_markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, httpFlag, addrFlag)
		},
	}
	cmd.Flags().BoolVar(&httpFlag, "http", false, "Serve streamable HTTP instead of stdio")
	cmd.Flags().StringVar(&addrFlag, "addr", "", "HTTP listen address (implies --http)")
	return cmd
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, httpMode bool, addr string) error {
	printer := newPrinter(cmd)
	server := mdformatmcp.NewServer(buildVersion())

	if !httpMode && addr == "" {
		printer.Stderr("mdformat %s: serving MCP over stdio", buildVersion())
		return server.Run(cmd.Context(), &mcp.StdioTransport{})
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	addr = resolveHTTPAddr(addr, os.Getenv("PORT"), cfg.HTTPAddr)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("listening on "+addr+": "+err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}

	printer.Stderr("mdformat %s: serving MCP over HTTP on %s", buildVersion(), listener.Addr())
	if err := serveHTTP(cmd.Context(), listener, newHTTPHandler(server, buildVersion())); err != nil {
		sysErr := output.NewSystemErrorWithCause("http server: "+err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}
	printer.Stderr("mdformat: server stopped")
	return nil
}

// resolveHTTPAddr picks the listen address: explicit flag, then $PORT, then
// the configured address.
func resolveHTTPAddr(flagAddr, port, configured string) string {
	if flagAddr != "" {
		return flagAddr
	}
	if port != "" {
		return ":" + port
	}
	return configured
}

// healthResponse is the body of GET /healthz.
type healthResponse struct {
	Status  string `json:"status"`
	Server  string `json:"server"`
	Version string `json:"version"`
}

// newHTTPHandler routes /healthz to a status probe and everything else to
// the MCP streamable HTTP handler.
func newHTTPHandler(server *mcp.Server, version string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "ok",
			Server:  mdformatmcp.ServerName,
			Version: version,
		})
	})
	mux.Handle("/", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil))
	return mux
}

// serveHTTP serves handler on listener until ctx is canceled, then shuts
// down gracefully. Open event streams that outlive shutdownTimeout are
// closed forcibly.
func serveHTTP(ctx context.Context, listener net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
	}
	return nil
}
