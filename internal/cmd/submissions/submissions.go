// Package submissions exports filtered backend submissions as CSV from the
// command line.
package submissions

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	entrypoint "github.com/maitri-healthcare/portal/internal/platform/cmd"
	"github.com/maitri-healthcare/portal/internal/platform/config"
	"github.com/maitri-healthcare/portal/internal/services/portal/integration/api"
	"github.com/maitri-healthcare/portal/internal/submission"
)

// Config holds submissions command configuration.
type Config struct {
	APIBaseURL string        `env:"PORTAL_API_BASE_URL"`
	APITimeout time.Duration `env:"PORTAL_API_TIMEOUT" envDefault:"10s"`
	Token      string        `env:"PORTAL_API_TOKEN"`
	Email      string        `env:"PORTAL_EMAIL"`
	Password   string        `env:"PORTAL_PASSWORD"`
	Query      submission.Query
	// Out is the CSV destination path. Empty or "-" writes to stdout.
	Out string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = config.LookupFirst(os.LookupEnv, "VITE_API_BASE_URL")
	}

	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "submissions backend base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "timeout for each backend call")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "login email (ignored with -token)")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "login password (ignored with -token)")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "backend bearer token")
	fs.StringVar(&cfg.Query.Search, "search", "", "case-insensitive name or email search")
	fs.StringVar(&cfg.Query.Country, "country", "", "exact current country")
	fs.StringVar(&cfg.Query.Start, "start", "", "first created date, YYYY-MM-DD")
	fs.StringVar(&cfg.Query.End, "end", "", "last created date, YYYY-MM-DD")
	fs.StringVar(&cfg.Query.Filter, "filter", "", `advanced filter, e.g. docs_ready = "Yes"`)
	fs.StringVar(&cfg.Query.OrderBy, "order-by", "", "ordering, e.g. created_at desc")
	fs.StringVar(&cfg.Out, "out", "", "output file (default stdout)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

// Validate reports missing connection or credential settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return errors.New("api base url is required (-api-base-url or PORTAL_API_BASE_URL)")
	}
	if strings.TrimSpace(c.Token) != "" {
		return nil
	}
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return errors.New("either -token or both -email and -password are required")
	}
	return nil
}

// Run fetches submissions, applies the query and writes CSV to out, or to
// the file named by cfg.Out. Progress is logged to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	plan, err := submission.Compile(cfg.Query)
	if err != nil {
		return err
	}
	logger := log.New(errOut, entrypoint.LogPrefix(entrypoint.ServiceSubmissions), 0)

	client, err := api.New(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout})
	if err != nil {
		return err
	}
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		result, err := client.Login(ctx, api.Credentials{Email: strings.TrimSpace(cfg.Email), Password: cfg.Password})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		token = result.Token
	}
	records, err := client.Dashboard(ctx, token)
	if err != nil {
		return fmt.Errorf("fetch submissions: %w", err)
	}
	filtered := plan.Run(records)

	dest := strings.TrimSpace(cfg.Out)
	if dest == "" || dest == "-" {
		if err := submission.WriteCSV(out, filtered); err != nil {
			return err
		}
		logger.Printf("wrote %d of %d submissions", len(filtered), len(records))
		return nil
	}
	if err := writeFile(dest, filtered); err != nil {
		return err
	}
	logger.Printf("wrote %d of %d submissions to %s", len(filtered), len(records), dest)
	return nil
}

func writeFile(path string, records []submission.Submission) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	return submission.WriteCSV(file, records)
}
