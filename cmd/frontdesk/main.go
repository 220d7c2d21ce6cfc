// frontdesk is the reception terminal of the mailroom. It signs in to the service, lists
// pending packages and runs the pickup confirmation screen for one of them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"mailroom/internal/adapters/in/tui"
	"mailroom/internal/adapters/out/filestore"
	"mailroom/internal/adapters/out/mailroomapi"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/generated/servers"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type options struct {
	server    string
	email     string
	password  string
	token     string
	packageID string
	camera    string
	page      int
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	var opts options
	flagSet := pflag.NewFlagSet("frontdesk", pflag.ContinueOnError)
	flagSet.StringVar(&opts.server, "server", envOr("MAILROOM_URL", "http://localhost:8080"), "mailroom service URL")
	flagSet.StringVarP(&opts.email, "email", "e", os.Getenv("MAILROOM_EMAIL"), "operator email")
	flagSet.StringVar(&opts.password, "password", "", "operator password (default $MAILROOM_PASSWORD)")
	flagSet.StringVar(&opts.token, "token", os.Getenv("MAILROOM_TOKEN"), "use an issued token instead of signing in")
	flagSet.StringVarP(&opts.packageID, "package", "p", "", "package to hand over; without it pending packages are listed")
	flagSet.StringVar(&opts.camera, "camera", envOr("MAILROOM_CAMERA", "snapshot.jpg"), "still image kept current by the desk camera")
	flagSet.IntVar(&opts.page, "page", 1, "page of the pending list")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if opts.password == "" {
		opts.password = os.Getenv("MAILROOM_PASSWORD")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, signedIn, err := connect(ctx, opts)
	if err != nil {
		return err
	}
	if signedIn {
		defer func() {
			_ = client.Logout(context.Background())
		}()
	}

	if opts.packageID == "" {
		return listPending(ctx, client, opts.page, stdout)
	}
	return handOver(ctx, client, opts, stdout)
}

func connect(ctx context.Context, opts options) (*mailroomapi.Client, bool, error) {
	client, err := mailroomapi.NewClient(opts.server, nil)
	if err != nil {
		return nil, false, err
	}
	if opts.token != "" {
		return client.WithToken(opts.token), false, nil
	}
	if opts.email == "" || opts.password == "" {
		return nil, false, errors.New("--email and a password are required unless --token is given")
	}
	if _, err = client.Login(ctx, opts.email, opts.password); err != nil {
		return nil, false, fmt.Errorf("signing in: %w", err)
	}
	return client, true, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D7D"))
)

func listPending(ctx context.Context, client *mailroomapi.Client, page int, w io.Writer) error {
	res, err := client.PendingPackages(ctx, page)
	if err != nil {
		return err
	}
	if len(res.Items) == 0 {
		_, err = fmt.Fprintln(w, mutedStyle.Render("No pending packages."))
		return err
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-36s  %-16s  %-24s  %s", "ID", "CODE", "STORE", "RECEIVED")))
	for _, p := range res.Items {
		fmt.Fprintf(w, "%-36s  %-16s  %-24s  %s\n",
			p.Id.String(), p.Code, truncate(p.StoreName, 24), p.ReceivedAt.Local().Format("02/01/2006 15:04"))
	}
	_, err = fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Page %d of %d, %d pending", res.Page, res.Pages, res.Total)))
	return err
}

func handOver(ctx context.Context, client *mailroomapi.Client, opts options, w io.Writer) error {
	id, err := kernel.UUIDFromString(opts.packageID)
	if err != nil {
		return fmt.Errorf("--package: %w", err)
	}

	detail, err := client.GetPackage(ctx, id)
	if err != nil {
		return err
	}
	if detail.Status != servers.PackageStatusPending {
		return fmt.Errorf("package %s is %s", detail.Code, detail.Status)
	}

	camera, err := filestore.NewFileCamera(opts.camera)
	if err != nil {
		return err
	}

	title := detail.Code + " · " + detail.StoreName
	outcome, err := tui.Run(ctx, id, camera, client, title, tea.WithAltScreen(), tea.WithContext(ctx))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Package %s: %s\n", detail.Code, outcome)
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprint(os.Stderr, strings.TrimLeft(`
frontdesk hands packages over at the mailroom reception.

Without --package it lists the pending packages. With --package it opens the
pickup screen: collector name and CPF, a photo from --camera, and a signature
drawn with the arrow keys.

Usage:
  frontdesk [flags]

Examples:
  # List pending packages
  frontdesk --email desk@mall.example

  # Hand over one package
  frontdesk --email desk@mall.example --package 0b9f3c1e-4f5a-4e0b-9d36-1c1b7a2f0e11

Flags:
`, "\n"))
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
