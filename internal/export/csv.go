package export

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/zechsoft/new-trust-sub003/internal/models"
)

// Header is the fixed column row of a registrations export.
var Header = []string{"ID", "Event", "Name", "Email", "Phone", "Participants", "Payment Status", "Amount", "Registered At"}

const timeLayout = time.RFC3339

func row(r models.Registration) []string {
	registered := ""
	if !r.RegisteredAt.IsZero() {
		registered = r.RegisteredAt.UTC().Format(timeLayout)
	}
	return []string{
		r.ID,
		r.EventTitle,
		r.Name,
		r.Email,
		r.Phone,
		strconv.Itoa(r.Participants),
		r.PaymentStatus,
		strconv.FormatFloat(r.Amount, 'f', 2, 64),
		registered,
	}
}

// WriteCSV writes the header and one line per registration. Every value is
// quoted and line breaks inside a field are folded to spaces, so n
// registrations always produce n+1 lines.
func WriteCSV(w io.Writer, regs []models.Registration) error {
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))
	b.WriteByte('\n')
	for _, r := range regs {
		writeLine(&b, row(r))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(f))
	}
	b.WriteByte('\n')
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func quote(s string) string {
	s = lineBreaks.Replace(s)
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Filename returns the attachment name for an export taken at t.
func Filename(t time.Time, ext string) string {
	return "registrations-" + t.Format("2006-01-02") + "." + ext
}
