package assistant

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"contact-assistant/internal/contact/domain"
)

// FormatRecord renders r on one line:
//
//	Contact name: John; Phones: 1234567890; 5555555555; Birthday: 15.06.1990
func FormatRecord(r *domain.Record) string {
	phones := "No phones"
	if ps := r.Phones(); len(ps) > 0 {
		parts := make([]string, len(ps))
		for i, p := range ps {
			parts[i] = p.String()
		}
		phones = strings.Join(parts, "; ")
	}
	birthday := "No birthday"
	if bd := r.Birthday(); bd != nil {
		birthday = bd.String()
	}
	return fmt.Sprintf("Contact name: %s; Phones: %s; Birthday: %s", r.Name(), phones, birthday)
}

// FormatUpcoming renders one upcoming birthday with the date to congratulate on.
// A moved birthday gets a second line with the original date.
func FormatUpcoming(u domain.UpcomingBirthday) string {
	line := fmt.Sprintf("Birthday %s %s", u.Name, u.Effective.Format(domain.DateLayout))
	if !u.Shifted {
		return line
	}
	return line + fmt.Sprintf("\n  %s's birthday on %s falls on a %s and has been moved to the next working day.",
		u.Name, u.Occurrence.Format(domain.DateLayout), u.Occurrence.Weekday())
}

// palette colours replies by kind.
type palette struct {
	ok     *color.Color
	fail   *color.Color
	note   *color.Color
	prompt *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		note:   color.New(color.FgYellow),
		prompt: color.New(color.FgBlue, color.Bold),
	}
	for _, c := range []*color.Color{p.ok, p.fail, p.note, p.prompt} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
