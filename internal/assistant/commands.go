package assistant

import (
	"context"
	"fmt"
	"strings"

	"contact-assistant/internal/contact/domain"
)

type command struct {
	name    string
	aliases []string
	usage   string
	summary string
	minArgs int
	stop    bool
	run     func(ctx context.Context, b *Bot, args []string) (string, error)
}

func commandTable() []*command {
	return []*command{
		{name: "hello", usage: "hello", summary: "greet the assistant", run: hello},
		{name: "help", aliases: []string{"command"}, usage: "help", summary: "list available commands", run: help},
		{name: "add", usage: "add <name> <phone>", summary: "add a contact or a phone to an existing one", minArgs: 2, run: addContact},
		{name: "change", usage: "change <name> <old phone> <new phone>", summary: "replace a phone number", minArgs: 3, run: changePhone},
		{name: "phone", usage: "phone <name>", summary: "show a contact's phone numbers", minArgs: 1, run: showPhones},
		{name: "remove-phone", aliases: []string{"rem-ph"}, usage: "remove-phone <name> <phone>", summary: "remove a phone number", minArgs: 2, run: removePhone},
		{name: "all", aliases: []string{"list"}, usage: "all", summary: "show all contacts", run: showAll},
		{name: "add-birthday", usage: "add-birthday <name> <DD.MM.YYYY>", summary: "set a contact's birthday", minArgs: 2, run: addBirthday},
		{name: "show-birthday", usage: "show-birthday <name>", summary: "show a contact's birthday", minArgs: 1, run: showBirthday},
		{name: "birthdays", usage: "birthdays", summary: "show birthdays in the next 7 days", run: birthdays},
		{name: "delete-contact", aliases: []string{"del-cont"}, usage: "delete-contact <name>", summary: "delete a contact", minArgs: 1, run: deleteContact},
		{name: "save", usage: "save", summary: "save the address book", run: save},
		{name: "close", aliases: []string{"exit"}, usage: "close", summary: "save and exit", stop: true, run: closeBot},
	}
}

func hello(context.Context, *Bot, []string) (string, error) {
	return "How can I help you?", nil
}

func help(_ context.Context, b *Bot, _ []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Available commands:")
	for _, c := range b.commands {
		usage := c.usage
		if len(c.aliases) > 0 {
			usage += " (" + strings.Join(c.aliases, ", ") + ")"
		}
		fmt.Fprintf(&sb, "\n  %-45s %s", usage, c.summary)
	}
	return sb.String(), nil
}

func addContact(_ context.Context, b *Bot, args []string) (string, error) {
	name, phone := args[0], args[1]
	if rec, ok := b.book.Find(name); ok {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return "Contact updated.", nil
	}
	rec, err := domain.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	b.book.AddRecord(rec)
	return "Contact added.", nil
}

func changePhone(_ context.Context, b *Bot, args []string) (string, error) {
	rec, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number %s changed to %s for contact %s.", args[1], args[2], rec.Name()), nil
}

func showPhones(_ context.Context, b *Bot, args []string) (string, error) {
	rec, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("%s has no phone numbers.", rec.Name()), nil
	}
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Phone numbers for %s: %s", rec.Name(), strings.Join(parts, ", ")), nil
}

func removePhone(_ context.Context, b *Bot, args []string) (string, error) {
	rec, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.RemovePhone(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number %s removed from contact %s.", args[1], rec.Name()), nil
}

func showAll(_ context.Context, b *Bot, _ []string) (string, error) {
	records := b.book.Records()
	if len(records) == 0 {
		return "Address book is empty.", nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = FormatRecord(r)
	}
	return strings.Join(lines, "\n"), nil
}

func addBirthday(_ context.Context, b *Bot, args []string) (string, error) {
	rec, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday for %s added: %s", rec.Name(), rec.Birthday()), nil
}

func showBirthday(_ context.Context, b *Bot, args []string) (string, error) {
	rec, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	if rec.Birthday() == nil {
		return fmt.Sprintf("%s has no birthday set.", rec.Name()), nil
	}
	return fmt.Sprintf("%s's birthday is: %s", rec.Name(), rec.Birthday()), nil
}

func birthdays(_ context.Context, b *Bot, _ []string) (string, error) {
	upcoming := b.book.UpcomingBirthdays(b.now())
	if len(upcoming) == 0 {
		return "No upcoming birthdays in the next week.", nil
	}
	lines := make([]string, 0, len(upcoming)+1)
	lines = append(lines, "Upcoming birthdays:")
	for _, u := range upcoming {
		lines = append(lines, FormatUpcoming(u))
	}
	return strings.Join(lines, "\n"), nil
}

func deleteContact(_ context.Context, b *Bot, args []string) (string, error) {
	if err := b.book.Delete(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s has been deleted.", args[0]), nil
}

func save(ctx context.Context, b *Bot, _ []string) (string, error) {
	if err := b.Save(ctx); err != nil {
		return "", err
	}
	return "Saved successfully.", nil
}

func closeBot(ctx context.Context, b *Bot, _ []string) (string, error) {
	if err := b.Save(ctx); err != nil {
		return "Good bye!", err
	}
	return "Saved.\nGood bye!", nil
}

func (b *Bot) find(name string) (*domain.Record, error) {
	rec, ok := b.book.Find(name)
	if !ok {
		return nil, &domain.NotFoundError{Kind: domain.KindContact, Key: name}
	}
	return rec, nil
}
