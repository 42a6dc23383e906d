package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/qanda"
	"github.com/aretw0/qanda/pkg/core"
	"github.com/aretw0/qanda/pkg/export"
)

// session drives the interactive read-eval-print loop. The logged-in
// username lives here and nowhere else; every service call receives it
// explicitly.
type session struct {
	svc     *qanda.Service
	reader  *bufio.Reader
	out     io.Writer
	current string
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive Q&A session",
	Long: `Session starts a read-eval-print loop over the knowledge base.

Before login the available commands are: register, login, help, exit.
After login: add, list, edit, delete, search, export, logout, help, exit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := qanda.Open(dataDir, qanda.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open knowledge base", err)
		}

		s := &session{
			svc:    svc,
			reader: bufio.NewReader(os.Stdin),
			out:    os.Stdout,
		}
		s.run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func (s *session) status() string {
	if s.current == "" {
		return "not logged in"
	}
	return s.current
}

func (s *session) isLoggedIn() bool {
	return s.current != ""
}

// run reads a line, parses the first token as the command, and
// dispatches. Unknown commands are reported back to the user. The loop
// exits on EOF or when the user types "exit" or "quit". Command errors
// are reported inline; the loop itself stays alive.
func (s *session) run(ctx context.Context) {
	for {
		fmt.Fprintf(s.out, "qanda> %s > ", s.status())
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if s.isLoggedIn() {
				fmt.Fprintln(s.out, "Available commands: add, (l)ist, edit, delete, search, export, logout, exit")
			} else {
				fmt.Fprintln(s.out, "Available commands: register, login, exit")
			}

		case "register":
			s.register(ctx)

		case "login":
			s.login(ctx)

		case "add":
			s.withLogin(func() { s.add(ctx) })

		case "l", "list":
			s.withLogin(func() { s.list(ctx) })

		case "edit":
			s.withLogin(func() { s.edit(ctx) })

		case "delete":
			s.withLogin(func() { s.delete(ctx) })

		case "search":
			s.withLogin(func() { s.search(ctx) })

		case "export":
			s.withLogin(func() { s.export(ctx) })

		case "logout":
			s.current = ""

		case "exit", "quit":
			fmt.Fprintln(s.out, "Bye!")
			return

		default:
			fmt.Fprintln(s.out, "Unknown command:", cmd)
		}
	}
}

func (s *session) withLogin(fn func()) {
	if !s.isLoggedIn() {
		fmt.Fprintln(s.out, "Please login first.")
		return
	}
	fn()
}

func (s *session) register(ctx context.Context) {
	username, err := getSimpleText(s.reader, "New username", s.out)
	if err != nil {
		return
	}
	password, err := getPassword("New password", s.out)
	if err != nil {
		return
	}
	confirm, err := getPassword("Confirm password", s.out)
	if err != nil {
		return
	}
	if password != confirm {
		fmt.Fprintln(s.out, "Passwords don't match!")
		return
	}
	email, err := getSimpleText(s.reader, "Email (optional)", s.out)
	if err != nil {
		return
	}

	switch err := s.svc.Register(ctx, username, password, email); {
	case errors.Is(err, core.ErrUserExists):
		fmt.Fprintln(s.out, "Username already exists")
	case errors.Is(err, core.ErrPasswordTooShort):
		fmt.Fprintf(s.out, "Password must be at least %d characters\n", core.MinPasswordLen)
	case err != nil:
		fmt.Fprintln(s.out, "Registration failed:", err)
	default:
		fmt.Fprintln(s.out, "Registration successful! Please login.")
	}
}

func (s *session) login(ctx context.Context) {
	username, err := getSimpleText(s.reader, "Username", s.out)
	if err != nil {
		return
	}
	password, err := getPassword("Password", s.out)
	if err != nil {
		return
	}

	if err := s.svc.Authenticate(ctx, username, password); err != nil {
		fmt.Fprintln(s.out, "Invalid credentials")
		return
	}
	s.current = username
	fmt.Fprintf(s.out, "Welcome, %s!\n", username)
}

func (s *session) add(ctx context.Context) {
	subject, err := getSimpleText(s.reader, "Subject/Topic (e.g. Go, Math, History)", s.out)
	if err != nil {
		return
	}
	question, err := getMultiline(s.reader, "Your question", s.out)
	if err != nil {
		return
	}
	answer, err := getMultiline(s.reader, "Your answer", s.out)
	if err != nil {
		return
	}

	if _, err := s.svc.AddEntry(ctx, s.current, subject, question, answer); err != nil {
		if errors.Is(err, core.ErrMissingField) {
			fmt.Fprintln(s.out, "Please fill in all fields!")
		} else {
			fmt.Fprintln(s.out, "Failed to save:", err)
		}
		return
	}
	fmt.Fprintln(s.out, "Q&A saved successfully.")
}

func (s *session) list(ctx context.Context) {
	view, err := s.svc.ListOwned(ctx, s.current)
	if err != nil {
		fmt.Fprintln(s.out, "Failed to list entries:", err)
		return
	}
	if len(view) == 0 {
		fmt.Fprintln(s.out, "You haven't saved any Q&As yet. Add some first!")
		return
	}

	for _, subject := range view {
		fmt.Fprintf(s.out, "%s\n", subject.Name)
		for i, e := range subject.Entries {
			fmt.Fprintf(s.out, "  Q%d: %s\n", i+1, e.Question)
			fmt.Fprintf(s.out, "      %s\n", e.Answer)
			fmt.Fprintf(s.out, "      Saved on: %s\n", e.Timestamp)
		}
	}
}

// pickEntry lists the user's entries under a subject and prompts for a
// number. It resolves the selection to the entry itself.
func (s *session) pickEntry(ctx context.Context) (string, core.Entry, bool) {
	subject, err := getSimpleText(s.reader, "Subject", s.out)
	if err != nil {
		return "", core.Entry{}, false
	}

	view, err := s.svc.ListOwned(ctx, s.current)
	if err != nil {
		fmt.Fprintln(s.out, "Failed to list entries:", err)
		return "", core.Entry{}, false
	}

	var entries []core.Entry
	for _, se := range view {
		if se.Name == subject {
			entries = se.Entries
			break
		}
	}
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No entries under that subject.")
		return "", core.Entry{}, false
	}

	for i, e := range entries {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, e.Question)
	}
	num, err := getSimpleText(s.reader, "Entry number", s.out)
	if err != nil {
		return "", core.Entry{}, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || n > len(entries) {
		fmt.Fprintln(s.out, "Invalid entry number.")
		return "", core.Entry{}, false
	}
	return subject, entries[n-1], true
}

func (s *session) edit(ctx context.Context) {
	subject, entry, ok := s.pickEntry(ctx)
	if !ok {
		return
	}

	question, err := getMultiline(s.reader, "New question", s.out)
	if err != nil {
		return
	}
	answer, err := getMultiline(s.reader, "New answer", s.out)
	if err != nil {
		return
	}

	if err := s.svc.EditEntry(ctx, s.current, subject, entry.ID, question, answer); err != nil {
		fmt.Fprintln(s.out, "Failed to edit:", err)
		return
	}
	fmt.Fprintln(s.out, "Changes saved.")
}

func (s *session) delete(ctx context.Context) {
	subject, entry, ok := s.pickEntry(ctx)
	if !ok {
		return
	}

	if err := s.svc.DeleteEntry(ctx, s.current, subject, entry.ID); err != nil {
		fmt.Fprintln(s.out, "Failed to delete:", err)
		return
	}
	fmt.Fprintln(s.out, "Entry deleted.")
}

func (s *session) search(ctx context.Context) {
	term, err := getSimpleText(s.reader, "Enter search term", s.out)
	if err != nil {
		return
	}
	if term == "" {
		return
	}

	results, err := s.svc.Search(ctx, s.current, term)
	if err != nil {
		fmt.Fprintln(s.out, "Search failed:", err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No matching Q&As found in your collection.")
		return
	}

	fmt.Fprintf(s.out, "Found %d results:\n", len(results))
	for _, r := range results {
		fmt.Fprintf(s.out, "  [%s] %s\n", r.Subject, r.Question)
		fmt.Fprintf(s.out, "      %s (%s)\n", r.Answer, r.Timestamp)
	}
}

func (s *session) export(ctx context.Context) {
	name, err := getSimpleText(s.reader, "Export format (csv, json, pdf, md)", s.out)
	if err != nil {
		return
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}

	raw, err := getSimpleText(s.reader, "Subjects to export (patterns, comma separated, * for all)", s.out)
	if err != nil {
		return
	}
	patterns := splitPatterns(raw)
	if len(patterns) == 0 {
		fmt.Fprintln(s.out, "Please select at least one subject.")
		return
	}

	view, err := s.svc.ListOwned(ctx, s.current)
	if err != nil {
		fmt.Fprintln(s.out, "Failed to load entries:", err)
		return
	}

	artifact, err := export.Build(s.current, view, patterns, format)
	if errors.Is(err, core.ErrNothingToExport) {
		fmt.Fprintln(s.out, "No Q&As to export. Add some first!")
		return
	}
	if err != nil {
		fmt.Fprintln(s.out, "Export failed:", err)
		return
	}

	if err := os.WriteFile(artifact.Name, artifact.Data, 0o644); err != nil {
		fmt.Fprintln(s.out, "Failed to write export:", err)
		return
	}
	fmt.Fprintf(s.out, "Wrote %s (%s)\n", artifact.Name, artifact.MIME)
}

func splitPatterns(raw string) []string {
	var patterns []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
