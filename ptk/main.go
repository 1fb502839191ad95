package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jgrall/ptrack/cmd"
)

func main() {
	// A .env in the working directory is the only configuration surface:
	// the binary takes no flags and boots straight into the loop.
	_ = godotenv.Load()

	log := cmd.NewLogger()

	quoter, err := cmd.NewQuoter(log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println(`ptk — interactive portfolio tracker, type "help" for commands`)
	s := cmd.NewSession(os.Stdin, os.Stdout, quoter, log)
	if err := s.Run(); err != nil {
		if errors.Is(err, cmd.ErrInputClosed) {
			// distinct status so scripts can tell a dead input stream from
			// an ordinary failure
			log.Error().Err(err).Msg("terminating")
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
