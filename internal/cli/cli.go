// Package cli implements zsettings' command-line subcommands.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/zarlcorp/zsettings/internal/account"
	"github.com/zarlcorp/zsettings/internal/config"
	"github.com/zarlcorp/zsettings/internal/inspect"
	"github.com/zarlcorp/zsettings/internal/kv"
	"golang.org/x/term"
)

// DataDir returns the default data directory for zsettings.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zsettings"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zsettings"
	}
	return home + "/.local/share/zsettings"
}

// ReadPassword prompts on w and reads a passphrase without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(b), nil
}

// ReadNewPassword prompts for a new vault passphrase with confirmation.
func ReadNewPassword(w io.Writer) (string, error) {
	pass, err := ReadPassword("create vault passphrase: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassword("confirm vault passphrase: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", fmt.Errorf("passphrases do not match")
	}
	return pass, nil
}

// IsFirstRun checks whether the vault has been initialized.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(dir + "/salt")
	return err != nil
}

// OpenStore prompts for the passphrase and unlocks the settings store of
// the given backend.
func OpenStore(dir, backend string) (kv.StoreCloser, error) {
	var pass string
	var err error
	if IsFirstRun(dir) {
		pass, err = ReadNewPassword(os.Stderr)
	} else {
		pass, err = ReadPassword("vault passphrase: ", os.Stderr)
	}
	if err != nil {
		return nil, err
	}
	return kv.OpenDir(backend, dir, pass)
}

// CmdInspect prints the stored application state.
func CmdInspect(cfg config.Config, args []string) {
	v, err := OpenStore(DataDir(), cfg.Backend)
	if err != nil {
		fatal(err)
	}
	defer v.Close()

	if err := writeReport(os.Stdout, inspect.Read(v), hasFlag(args, "--json")); err != nil {
		fatal(err)
	}
}

// CmdClear removes every application key after confirmation. --yes skips
// the prompt.
func CmdClear(cfg config.Config, args []string) {
	if !hasFlag(args, "--yes") && !confirm(os.Stdin, os.Stderr, "clear all stored settings? [y/N] ") {
		fmt.Fprintln(os.Stderr, "aborted")
		return
	}

	v, err := OpenStore(DataDir(), cfg.Backend)
	if err != nil {
		fatal(err)
	}
	defer v.Close()

	if err := inspect.ClearAll(v); err != nil {
		fatal(fmt.Errorf("clear: %w", err))
	}
	fmt.Println("cleared")
}

// CmdStrength scores a candidate password.
func CmdStrength(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: zsettings strength <password>")
		os.Exit(1)
	}
	writeStrength(os.Stdout, args[0])
}

func writeReport(w io.Writer, r inspect.Report, asJSON bool) error {
	if r.Err != nil {
		return r.Err
	}

	if asJSON {
		doc := make(map[string]any, len(r.Entries))
		for _, e := range r.Entries {
			if e.Parsed != nil {
				doc[e.Key] = e.Parsed
			} else {
				doc[e.Key] = e.Raw
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}

	if len(r.Entries) == 0 {
		fmt.Fprintln(w, "no stored values")
		return nil
	}

	for _, e := range r.Entries {
		fmt.Fprintf(w, "%s (%s)\n", e.Key, inspect.FormatBytes(len(e.Raw)))
		for _, line := range strings.Split(e.Pretty(), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintf(w, "total: %s\n", inspect.FormatBytes(r.TotalBytes))
	return nil
}

func writeStrength(w io.Writer, password string) {
	st := account.MeasureStrength(password)
	verdict := "accepted"
	if st.Score < account.MinScore {
		verdict = "rejected"
	}
	fmt.Fprintf(w, "%s (%d/5) %s\n", st.Level, st.Score, verdict)
}

func confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)
	line, _ := bufio.NewReader(r).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "zsettings: %v\n", err)
	os.Exit(1)
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}
