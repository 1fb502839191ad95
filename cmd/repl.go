package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jgrall/ptrack"
)

// ErrInputClosed reports that the interactive input stream ended or broke.
// It is the only condition, besides the exit command, that terminates the
// loop; the binary turns it into a distinct exit status.
var ErrInputClosed = errors.New("input stream closed")

// Session owns the single mutable portfolio and everything a command needs
// to run: the prompt reader, the output stream, the quote source and the
// logger. Commands receive it by pointer and mutate the portfolio in place;
// nothing else ever touches the portfolio.
type Session struct {
	Portfolio *ptrack.Portfolio
	Quoter    ptrack.Quoter
	Out       io.Writer
	Log       zerolog.Logger

	in *bufio.Reader
}

// NewSession builds a session with an empty portfolio reading commands from
// in and reporting on out.
func NewSession(in io.Reader, out io.Writer, q ptrack.Quoter, log zerolog.Logger) *Session {
	return &Session{
		Portfolio: ptrack.NewPortfolio(),
		Quoter:    q,
		Out:       out,
		Log:       log,
		in:        bufio.NewReader(in),
	}
}

// Run executes the read-eval loop until the exit command or the end of the
// input stream. Each command runs to completion before the next prompt.
func (s *Session) Run() error {
	commands := make(map[string]Command, len(Commands))
	for _, c := range Commands {
		commands[c.Name()] = c
	}

	for {
		line, err := s.Prompt("> ")
		if err != nil {
			return err
		}

		switch line {
		case "":
			continue
		case "exit":
			return nil
		}

		c, ok := commands[line]
		if !ok {
			fmt.Fprintf(s.Out, "unknown command %q, try \"help\"\n", line)
			continue
		}

		if err := c.Execute(s); err != nil {
			if errors.Is(err, ErrInputClosed) {
				return err
			}
			fmt.Fprintf(s.Out, "Error: %v\n", err)
			s.Log.Debug().Err(err).Str("command", c.Name()).Msg("command failed")
		}
	}
}

// Prompt prints a label and reads one line of input, trimmed of surrounding
// whitespace. A broken or exhausted input stream reports ErrInputClosed.
func (s *Session) Prompt(label string) (string, error) {
	fmt.Fprint(s.Out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}

// promptCents asks for a non-negative integer amount of cents.
func (s *Session) promptCents(label string) (int64, error) {
	raw, err := s.Prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%q is not a valid amount in cents", raw)
	}
	return v, nil
}

// promptQuantity asks for a positive integer number of units.
func (s *Session) promptQuantity(label string) (int64, error) {
	raw, err := s.Prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%q is not a valid quantity", raw)
	}
	return v, nil
}
