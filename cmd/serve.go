package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yassirfh/shopforge/internal/preview"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the site locally with live reload",
	Long: `Builds the site, serves it on a local port, and rebuilds whenever
the store file changes. Open browser tabs reload automatically.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the browser after starting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.PreviewPort
	}

	srv := preview.New(preview.Config{
		Port:      port,
		StoreFile: cfg.StoreFile,
		Dir:       filepath.Join(os.TempDir(), "shopforge-preview"),
		Currency:  cfg.Currency,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Rebuild(ctx); err != nil {
		return err
	}
	go srv.Watch(ctx, time.Second)

	if open, _ := cmd.Flags().GetBool("open"); open {
		openBrowser(fmt.Sprintf("http://localhost:%d", port))
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// openBrowser launches the default browser; failures are non-fatal.
func openBrowser(url string) {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", url)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		c = exec.Command("xdg-open", url)
	}
	if err := c.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open browser: %v\n", err)
	}
}
