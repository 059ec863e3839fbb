package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"golang.org/x/xerrors"
)

// Terminal выводит сообщения пользователю и при необходимости ждет Enter перед выходом,
// чтобы окно консоли, открытое двойным щелчком, не закрылось сразу.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	pause bool
}

// NewTerminal создает Terminal на stdin/stdout. Пауза включается только в Windows
// и только когда stdin - настоящий терминал.
func NewTerminal() *Terminal {
	return &Terminal{
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		pause: pauseOnExit && term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewTestTerminal создает Terminal поверх произвольных потоков.
func NewTestTerminal(in io.Reader, out io.Writer, pause bool) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, pause: pause}
}

// Println печатает строку для пользователя.
func (t *Terminal) Println(a ...any) {
	fmt.Fprintln(t.out, a...)
}

// WaitForEnter печатает приглашение и ждет Enter, если пауза включена.
func (t *Terminal) WaitForEnter(prompt string) error {
	if !t.pause {
		return nil
	}
	fmt.Fprint(t.out, prompt)
	if _, err := t.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return xerrors.Errorf("failed to read enter: %w", err)
	}
	return nil
}
