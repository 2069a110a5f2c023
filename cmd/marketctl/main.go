// Command marketctl drives the marketplace API from a terminal: log in,
// manage tie-ups, browse catalogs, and place or track orders.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/config"
	"github.com/swiftora/marketplace/internal/infrastructure/logger"
	"github.com/swiftora/marketplace/internal/infrastructure/marketplaceapi"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "http://localhost:8080/api/v1"
	envBaseURL     = "MARKET_CLIENT_BASE_URL"
	envToken       = "MARKET_TOKEN"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("marketctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		baseURL  string
		token    string
		timeout  time.Duration
		logLevel string
	)
	fs.StringVar(&baseURL, "url", envOr(envBaseURL, defaultBaseURL), "API base URL")
	fs.StringVar(&token, "token", os.Getenv(envToken), "Access token (default $"+envToken+")")
	fs.DurationVar(&timeout, "timeout", 15*time.Second, "Per request timeout")
	fs.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.Usage = func() { printUsage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	log, err := logger.New(&logger.Config{Level: logLevel, Format: "console", Output: "stderr"})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	client, err := marketplaceapi.NewClient(config.ClientConfig{BaseURL: baseURL, Timeout: timeout}, log)
	if err != nil {
		fmt.Fprintf(stderr, "marketctl: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := &cli{client: client, token: token, out: stdout, log: log}
	if err := cli.dispatch(ctx, fs.Arg(0), fs.Args()[1:]); err != nil {
		return report(stderr, err)
	}
	return 0
}

// report prints err and maps it to an exit code: 2 for usage, 3 for domain
// rule violations, 4 for transient failures, 1 otherwise
func report(w io.Writer, err error) int {
	var usage usageError
	if errors.As(err, &usage) {
		fmt.Fprintf(w, "usage: %s\n", usage)
		return 2
	}
	if code := shared.CodeOf(err); code != "" {
		fmt.Fprintf(w, "marketctl: [%s] %v\n", code, err)
		switch {
		case shared.IsRetryable(err):
			return 4
		case shared.IsDomainRule(err):
			return 3
		}
		return 1
	}
	fmt.Fprintf(w, "marketctl: %v\n", err)
	return 1
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, `Usage: marketctl [flags] <command> [args]

Commands:
  login <email> <password>                 Log in and print the access token
  whoami                                   Show the logged in profile
  suppliers                                List suppliers with tie-up status
  tieup-status <supplier-id>               Show the tie-up status with one supplier
  request-tieup <supplier-id>              Ask a supplier for a tie-up
  accept-tieup <supermarket-id>            Accept a supermarket's tie-up request
  requests                                 List tie-up requests (supplier)
  accepted                                 List accepted tie-ups (supermarket)
  products                                 List own products or orderable products
  place-order -supplier ID -product ID -qty N [-sku SKU] [-stock N]
  orders                                   List orders for the caller
  track <order-id>                         Show one order's tracking label
  advance <order-id> <status>              Move an order to its next status

Flags:`)
	fs.PrintDefaults()
}

type usageError string

func (e usageError) Error() string { return string(e) }

type cli struct {
	client *marketplaceapi.Client
	token  string
	out    io.Writer
	log    *zap.Logger
}
