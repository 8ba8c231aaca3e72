package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/zechsoft/new-trust-sub003/internal/models"
)

func registrations() []models.Registration {
	at := time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC)
	return []models.Registration{
		{ID: "r1", EventTitle: "Legal Aid Camp, Pune", Name: "Priya Sharma", Email: "priya@example.org", Phone: "+91 98200 00001", Participants: 2, PaymentStatus: "paid", Amount: 500, RegisteredAt: at},
		{ID: "r2", EventTitle: "Blood Drive", Name: `Ravi "RK" Kumar`, Email: "ravi@example.org", Participants: 1, PaymentStatus: "free", RegisteredAt: at},
		{ID: "r3", EventTitle: "Workshop", Name: "Anita\nDesai", Email: "anita@example.org", Participants: 3, PaymentStatus: "pending", Amount: 1200.5},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, registrations()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4:\n%s", len(lines), out)
	}
	wantHeader := "ID,Event,Name,Email,Phone,Participants,Payment Status,Amount,Registered At"
	if lines[0] != wantHeader {
		t.Fatalf("header = %s, want %s", lines[0], wantHeader)
	}
	if !strings.Contains(lines[1], `"Legal Aid Camp, Pune"`) {
		t.Fatalf("comma field not quoted: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"2024-03-09T10:30:00Z"`) {
		t.Fatalf("timestamp missing: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"Ravi ""RK"" Kumar"`) {
		t.Fatalf("quotes not doubled: %s", lines[2])
	}
	if !strings.Contains(lines[3], `"Anita Desai"`) || !strings.Contains(lines[3], `"1200.50"`) {
		t.Fatalf("newline not folded or amount misformatted: %s", lines[3])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Fatalf("line count = %d, want header only", got)
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, registrations()); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if rows[0][6] != "Payment Status" {
		t.Fatalf("header[6] = %q", rows[0][6])
	}
	if rows[1][1] != "Legal Aid Camp, Pune" || rows[1][5] != "2" {
		t.Fatalf("row 1 = %v", rows[1])
	}
}

func TestFilename(t *testing.T) {
	got := Filename(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "csv")
	if got != "registrations-2024-01-02.csv" {
		t.Fatalf("Filename() = %q", got)
	}
}
