// Package export serializes trip records into the recap CSV consumed by
// spreadsheet users. The format is bit-exact: semicolon delimited for
// Indonesian/European Excel locales, UTF-8 BOM so accented characters
// survive, text columns always quoted, numeric columns never quoted.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/naufalhakm/rekap-perjadin/internal/trip"
)

const MIMEType = "text/csv; charset=utf-8"

// utf8BOM makes Excel detect the encoding instead of assuming a legacy
// codepage.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Headers is the exact column order of the recap, matching the form's
// input order. Downstream spreadsheets key on these names.
var Headers = []string{
	"Nama Pegawai",
	"Kota Tujuan",
	"Nama Hotel/Penginapan",
	"Tanggal Mulai",
	"Tanggal Selesai",
	"Keperluan Perjalanan",
	"Jenis Kendaraan",
	"Nomor Tiket",
	"Tempat Duduk",
	"Biaya BBM (Rp)",
	"Biaya TOL (Rp)",
	"Akomodasi (Rp)",
	"Uang Makan (Rp)",
	"Transport Lokal (Rp)",
	"Harga Tiket (Rp)",
	"Total Biaya (Rp)",
	"No. Surat Tugas",
	"No. Nota Dinas",
	"Link File Nota",
}

// File is a rendered export ready to hand to an HTTP response or write to
// disk.
type File struct {
	Name     string
	MIMEType string
	Content  []byte
}

// Export renders trips in the order given; callers sort beforehand. A nil
// return means there is nothing to export and no file must be produced.
func Export(trips []*trip.Trip, now time.Time) *File {
	if len(trips) == 0 {
		return nil
	}

	var b strings.Builder
	b.Write(utf8BOM)
	b.WriteString(strings.Join(Headers, ";"))

	for _, t := range trips {
		b.WriteByte('\n')
		b.WriteString(row(t))
	}

	return &File{
		Name:     FileName(now),
		MIMEType: MIMEType,
		Content:  []byte(b.String()),
	}
}

// FileName follows the original recap naming: the id-ID short date with
// its slashes turned into dashes, day and month unpadded.
func FileName(now time.Time) string {
	return fmt.Sprintf("Rekap_Perjalanan_Dinas_%d-%d-%d.csv", now.Day(), int(now.Month()), now.Year())
}

func row(t *trip.Trip) string {
	fields := []string{
		quote(t.TravelerName),
		quote(t.Destination),
		quote(t.LodgingName),
		t.StartDate,
		t.EndDate,
		quote(collapseNewlines(t.Purpose)),
		quote(string(t.VehicleKind)),
		quote(t.TicketNumber),
		quote(t.Seat),
		amount(t.FuelCost),
		amount(t.TollCost),
		amount(t.LodgingCost),
		amount(t.MealCost),
		amount(t.LocalTransport),
		amount(t.TicketPrice),
		amount(t.TotalCost),
		quote(t.SuratTugasNumber),
		quote(t.NotaDinasNumber),
		quote(t.NotaDinasFileURL),
	}
	return strings.Join(fields, ";")
}

// quote wraps a text field in double quotes, doubling any embedded quote.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func collapseNewlines(s string) string {
	return newlineReplacer.Replace(s)
}

func amount(v int64) string {
	return strconv.FormatInt(v, 10)
}
