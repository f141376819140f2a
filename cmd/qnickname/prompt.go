package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/radutopala/qnickname/internal/nickname"
)

var errNoName = errors.New("no name entered")

// promptName asks for a name until a non-blank line is read.
func promptName(r *bufio.Reader, w io.Writer) (string, error) {
	for {
		if _, err := fmt.Fprint(w, "Please enter your name: "); err != nil {
			return "", err
		}
		line, err := r.ReadString('\n')
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		if errors.Is(err, io.EOF) {
			return "", errNoName
		}
		if err != nil {
			return "", err
		}
	}
}

func runPrompt(stdin io.Reader, stdout io.Writer) error {
	name, err := promptName(bufio.NewReader(stdin), stdout)
	if err != nil {
		return err
	}
	if nick, ok := nickname.Resolve(nickname.Default, name); ok {
		_, err = fmt.Fprintf(stdout, "Your QNickName is: %s\n", nick)
	} else {
		_, err = fmt.Fprintln(stdout, "You don't have a name! (Sorry!)")
	}
	return err
}
