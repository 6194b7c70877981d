package assistant

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"contact-assistant/internal/contact/domain"
	"contact-assistant/internal/contact/repository"
	"contact-assistant/internal/telemetry"
)

// Bot dispatches commands against an address book and persists it through a repository.
// A Bot is not safe for concurrent use.
type Bot struct {
	book     *domain.AddressBook
	repo     repository.Repository
	recorder *telemetry.Recorder
	logger   *slog.Logger
	now      func() time.Time
	palette  palette
	commands []*command
	byName   map[string]*command
}

// Option configures a Bot.
type Option func(*Bot)

// WithRecorder records a span, metrics and an event for every command.
func WithRecorder(r *telemetry.Recorder) Option {
	return func(b *Bot) { b.recorder = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) { b.logger = l }
}

// WithClock sets the source of "today" for the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(b *Bot) { b.now = now }
}

// WithColor enables or disables ANSI colours in replies. Colours are off by default.
func WithColor(enabled bool) Option {
	return func(b *Bot) { b.palette = newPalette(enabled) }
}

// New returns a Bot over book that saves to repo.
func New(book *domain.AddressBook, repo repository.Repository, opts ...Option) *Bot {
	b := &Bot{
		book:    book,
		repo:    repo,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
		palette: newPalette(false),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.commands = commandTable()
	b.byName = make(map[string]*command)
	for _, c := range b.commands {
		b.byName[c.name] = c
		for _, alias := range c.aliases {
			b.byName[alias] = c
		}
	}
	return b
}

// Book returns the address book the bot operates on.
func (b *Bot) Book() *domain.AddressBook { return b.book }

// Handle executes one input line and returns the reply. stop reports that the user asked to exit.
func (b *Bot) Handle(ctx context.Context, line string) (reply string, stop bool) {
	name, args := ParseInput(line)
	if name == "" {
		return b.palette.note.Sprint("Please enter a command."), false
	}
	cmd, ok := b.byName[name]
	if !ok {
		b.logger.Debug("unknown command", "command", name)
		return b.palette.fail.Sprint("Invalid command."), false
	}

	ctx, end := b.recorder.Start(ctx, cmd.name, len(args))
	var err error
	if len(args) < cmd.minArgs {
		err = &usageError{command: cmd.name, usage: cmd.usage}
	} else {
		reply, err = cmd.run(ctx, b, args)
	}
	end(outcomeOf(err))

	if err != nil {
		b.logger.Debug("command failed", "command", cmd.name, "error", err)
		msg := b.palette.fail.Sprint(Describe(err))
		if reply != "" {
			msg += "\n" + reply
		}
		return msg, cmd.stop
	}
	return b.palette.ok.Sprint(reply), cmd.stop
}

// Save persists the address book.
func (b *Bot) Save(ctx context.Context) error {
	if err := b.repo.Save(ctx, b.book); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	b.logger.Debug("address book saved", "contacts", b.book.Len())
	return nil
}
