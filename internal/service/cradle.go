package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chrisyarbrough/SharpShuffleBag/bag"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/logging"
)

// RunCradle запускает консольный пример: все коты по очереди покидают колыбель
// в случайном порядке, после чего пользователь решает, начинать ли новый проход.
// Завершается при ответе, отличном от "y", по EOF или при отмене ctx.
func (s *Service) RunCradle(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	answers := readLines(ctx, in)

	for pass := 1; ; pass++ {
		passCtx := logging.WithLogPass(ctx, pass)

		fmt.Fprintf(out, "Good evening! There are %d cats in the cradle.\n", s.Size())
		fmt.Fprintln(out, "Each cat leaves the cradle to go on an adventure. The order is: ")

		for s.HasUnused() {
			d, err := s.Draw(passCtx, true)
			if errors.Is(err, bag.ErrExhausted) {
				// Последний элемент забрали через HTTP.
				break
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "- %s\n", d.Item)
		}

		fmt.Fprintln(out, "All cats have left. Advance to morning? (y/n)")

		var answer string
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-answers:
			if !ok {
				slog.DebugContext(passCtx, "input closed, stopping cradle")
				return nil
			}
			answer = strings.TrimSpace(line)
		}
		if !strings.EqualFold(answer, "y") {
			return nil
		}

		fmt.Fprintln(out)
		s.Reset(passCtx)
	}
}

// readLines читает строки из in в отдельной горутине, чтобы ожидание ввода можно было прервать через ctx.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
