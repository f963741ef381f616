package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-api-response/internal/adapter"
	"github.com/MKhiriev/go-api-response/internal/config"
	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/service"
	"github.com/MKhiriev/go-api-response/models"
)

const defaultAddress = "http://localhost:8080"

// options are the root flags shared by every command.
type options struct {
	address string
	timeout time.Duration
	token   string

	newClient func(address string, timeout time.Duration) (adapter.WidgetClient, error)
	client    adapter.WidgetClient

	logger *logger.Logger
}

func newOptions(log *logger.Logger) *options {
	return &options{
		newClient: func(address string, timeout time.Duration) (adapter.WidgetClient, error) {
			return adapter.NewHTTPWidgetClient(address, timeout, log)
		},
		logger: log,
	}
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "api-client",
		Short:         "Client of the widget API envelope",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.address, "addr", "a", envOr("API_ADDRESS", defaultAddress), "server address")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")
	flags.StringVarP(&opts.token, "token", "t", os.Getenv("API_TOKEN"), "bearer token")

	cmd.AddCommand(
		newBuildInfoCmd(),
		newVersionCmd(opts),
		newListCmd(opts),
		newGetCmd(opts),
		newCreateCmd(opts),
		newDeleteCmd(opts),
		newMeCmd(opts),
		newFetchCmd(opts),
		newTokenCmd(),
	)
	return cmd
}

// widgetClient builds the client on first use and applies the token flag.
func (o *options) widgetClient() (adapter.WidgetClient, error) {
	if o.client == nil {
		c, err := o.newClient(o.address, o.timeout)
		if err != nil {
			return nil, err
		}
		o.client = c
	}
	if o.token != "" {
		o.client.SetToken(o.token)
	}
	return o.client, nil
}

// run adapts a client call to a cobra RunE that prints the result as JSON.
func (o *options) run(fn func(ctx context.Context, c adapter.WidgetClient, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := o.widgetClient()
		if err != nil {
			return err
		}

		result, err := fn(cmd.Context(), c, args)
		if err != nil {
			return err
		}
		if result == nil {
			return nil
		}
		return printJSON(cmd.OutOrStdout(), result)
	}
}

func newBuildInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-info",
		Short: "Print client build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
			return printJSON(cmd.OutOrStdout(), build)
		},
	}
}

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print server build information",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, c adapter.WidgetClient, _ []string) (any, error) {
			return c.Version(ctx)
		}),
	}
}

func newListCmd(opts *options) *cobra.Command {
	var filter models.WidgetFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List widgets",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, c adapter.WidgetClient, _ []string) (any, error) {
			return c.ListWidgets(ctx, filter)
		}),
	}
	cmd.Flags().StringVar(&filter.Color, "color", "", "only widgets of this color")
	cmd.Flags().Int64Var(&filter.OwnerID, "owner", 0, "only widgets of this owner")
	cmd.Flags().Uint64Var(&filter.Limit, "limit", 0, "page size")
	cmd.Flags().Uint64Var(&filter.Offset, "offset", 0, "page offset")
	return cmd
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one widget",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, c adapter.WidgetClient, args []string) (any, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return c.GetWidget(ctx, id)
		}),
	}
}

func newCreateCmd(opts *options) *cobra.Command {
	var req models.CreateWidgetRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a widget owned by the token holder",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, c adapter.WidgetClient, _ []string) (any, error) {
			return c.CreateWidget(ctx, req)
		}),
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "widget name")
	cmd.Flags().StringVar(&req.Color, "color", "", "widget color")
	cmd.Flags().StringVar(&req.SecretNote, "note", "", "note only the owner can read")
	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a widget owned by the token holder",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, c adapter.WidgetClient, args []string) (any, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return nil, c.DeleteWidget(ctx, id)
		}),
	}
}

func newMeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Describe the token holder",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, c adapter.WidgetClient, _ []string) (any, error) {
			return c.Me(ctx)
		}),
	}
}

func newFetchCmd(opts *options) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "fetch <path>",
		Short: "Perform a raw request and print the envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.widgetClient()
			if err != nil {
				return err
			}

			resp, err := c.Fetch(cmd.Context(), strings.ToUpper(method), args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&method, "method", "X", http.MethodGet, "HTTP method")
	return cmd
}

// newTokenCmd mints a development token with the server's signing settings.
// Env: AUTH_TOKEN_SIGN_KEY, AUTH_TOKEN_ISSUER, AUTH_TOKEN_DURATION.
func newTokenCmd() *cobra.Command {
	var userID int64
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for a user id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := authConfigFromEnv()
			if err != nil {
				return err
			}

			token, err := service.NewAuthService(cfg, logger.Nop()).CreateToken(cmd.Context(), userID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.String())
			return err
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 1, "user id carried in the sub claim")
	return cmd
}

func authConfigFromEnv() (config.Auth, error) {
	cfg := config.Auth{
		TokenSignKey:  os.Getenv("AUTH_TOKEN_SIGN_KEY"),
		TokenIssuer:   envOr("AUTH_TOKEN_ISSUER", "api-response-server"),
		TokenDuration: time.Hour,
	}
	if v := os.Getenv("AUTH_TOKEN_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config.Auth{}, fmt.Errorf("invalid AUTH_TOKEN_DURATION: %w", err)
		}
		cfg.TokenDuration = d
	}
	return cfg, nil
}

// printResponse prints the status line and the envelope members, or the raw
// body for plain responses.
func printResponse(w io.Writer, resp adapter.Response) error {
	if _, err := fmt.Fprintf(w, "status: %d\n", resp.Status); err != nil {
		return err
	}
	if !resp.IsEnvelope {
		_, err := fmt.Fprintf(w, "body: %s\n", strings.TrimSpace(string(resp.Body)))
		return err
	}

	for _, e := range resp.Envelope.Errors {
		if _, err := fmt.Fprintf(w, "error %d: %s\n", e.Code, e.Title); err != nil {
			return err
		}
	}
	if resp.Envelope.Failed() {
		return nil
	}

	var data any
	if err := resp.Envelope.DecodeData(&data); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "data: "); err != nil {
		return err
	}
	return printJSON(w, data)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid widget id %q", s)
	}
	return id, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
