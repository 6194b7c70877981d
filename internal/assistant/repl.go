package assistant

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	welcome = "Welcome to the assistant bot!"
	prompt  = "Enter a command: "
)

// maxLineBytes caps a command line; longer lines are rejected as invalid commands.
const maxLineBytes = 64 << 10

// Run reads commands from in until close/exit, end of input, or ctx is done, writing replies to out.
// The address book is saved on every way out; close/exit save through the command itself.
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := readLines(readCtx, in)

	fmt.Fprintln(out, b.palette.ok.Sprint(welcome))
	for {
		fmt.Fprint(out, b.palette.prompt.Sprint(prompt))
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return b.shutdown(context.WithoutCancel(ctx), out, ctx.Err())
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				var err error
				select {
				case err = <-readErr:
				default:
				}
				return b.shutdown(ctx, out, err)
			}
			if len(line) > maxLineBytes {
				b.logger.Debug("input line too long", "bytes", len(line))
				fmt.Fprintln(out, b.palette.fail.Sprint("Invalid command."))
				continue
			}
			reply, stop := b.Handle(ctx, line)
			fmt.Fprintln(out, reply)
			if stop {
				return nil
			}
		}
	}
}

// readLines sends each line of in, without its line ending, until EOF, a read error, or ctx is done.
// A read error other than io.EOF is delivered on the error channel before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			line, err := r.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
		}
	}()
	return lines, readErr
}

// shutdown saves the book when input ends without close/exit. cause is returned unless saving fails.
func (b *Bot) shutdown(ctx context.Context, out io.Writer, cause error) error {
	if err := b.Save(ctx); err != nil {
		fmt.Fprintln(out, b.palette.fail.Sprint(Describe(err)))
		return errors.Join(cause, err)
	}
	fmt.Fprintln(out, b.palette.ok.Sprint("Saved.\nGood bye!"))
	if errors.Is(cause, context.Canceled) {
		return nil
	}
	return cause
}
