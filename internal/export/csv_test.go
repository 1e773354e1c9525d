package export_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/naufalhakm/rekap-perjadin/internal/export"
	"github.com/naufalhakm/rekap-perjadin/internal/trip"
)

var expectedHeader = "Nama Pegawai;Kota Tujuan;Nama Hotel/Penginapan;Tanggal Mulai;Tanggal Selesai;" +
	"Keperluan Perjalanan;Jenis Kendaraan;Nomor Tiket;Tempat Duduk;Biaya BBM (Rp);Biaya TOL (Rp);" +
	"Akomodasi (Rp);Uang Makan (Rp);Transport Lokal (Rp);Harga Tiket (Rp);Total Biaya (Rp);" +
	"No. Surat Tugas;No. Nota Dinas;Link File Nota"

func sampleTrip() *trip.Trip {
	return &trip.Trip{
		ID:               "trip-1",
		TravelerName:     "Budi Santoso",
		Destination:      "Surabaya",
		LodgingName:      "Hotel Majapahit",
		StartDate:        "2024-03-01",
		EndDate:          "2024-03-03",
		Purpose:          "Rapat koordinasi",
		VehicleKind:      trip.VehiclePesawat,
		TicketNumber:     "GA-3151",
		Seat:             "12A",
		SuratTugasNumber: "ST-001",
		NotaDinasNumber:  "ND-001",
		NotaDinasFileURL: "https://files.example.go.id/nd-001.pdf",
		LodgingCost:      1200000,
		MealCost:         450000,
		LocalTransport:   300000,
		TicketPrice:      1850000,
		TotalCost:        3800000,
	}
}

var _ = Describe("CSV export", func() {
	now := time.Date(2024, time.March, 7, 10, 30, 0, 0, time.UTC)

	It("produces no file for an empty record list", func() {
		Expect(export.Export(nil, now)).To(BeNil())
		Expect(export.Export([]*trip.Trip{}, now)).To(BeNil())
	})

	It("prefixes the content with a UTF-8 byte order mark", func() {
		file := export.Export([]*trip.Trip{sampleTrip()}, now)
		Expect(file).NotTo(BeNil())
		Expect(file.Content[:3]).To(Equal([]byte{0xEF, 0xBB, 0xBF}))
	})

	It("writes the 19 headers in the exact recap order", func() {
		file := export.Export([]*trip.Trip{sampleTrip()}, now)
		content := strings.TrimPrefix(string(file.Content), "\uFEFF")

		lines := strings.Split(content, "\n")
		Expect(lines[0]).To(Equal(expectedHeader))
		Expect(strings.Split(lines[0], ";")).To(HaveLen(19))
	})

	It("renders a full record row exactly", func() {
		file := export.Export([]*trip.Trip{sampleTrip()}, now)
		content := strings.TrimPrefix(string(file.Content), "\uFEFF")

		lines := strings.Split(content, "\n")
		Expect(lines).To(HaveLen(2))
		Expect(lines[1]).To(Equal(
			`"Budi Santoso";"Surabaya";"Hotel Majapahit";2024-03-01;2024-03-03;` +
				`"Rapat koordinasi";"Umum-Pesawat";"GA-3151";"12A";` +
				`0;0;1200000;450000;300000;1850000;3800000;` +
				`"ST-001";"ND-001";"https://files.example.go.id/nd-001.pdf"`,
		))
	})

	It("keeps rows in the order given", func() {
		first := sampleTrip()
		second := sampleTrip()
		second.TravelerName = "Siti Rahayu"

		file := export.Export([]*trip.Trip{first, second}, now)
		content := strings.TrimPrefix(string(file.Content), "\uFEFF")

		lines := strings.Split(content, "\n")
		Expect(lines).To(HaveLen(3))
		Expect(lines[1]).To(ContainSubstring("Budi Santoso"))
		Expect(lines[2]).To(ContainSubstring("Siti Rahayu"))
	})

	It("doubles literal quotes inside text fields", func() {
		t := sampleTrip()
		t.TravelerName = `O"Brien`

		file := export.Export([]*trip.Trip{t}, now)

		Expect(string(file.Content)).To(ContainSubstring(`"O""Brien"`))
	})

	It("collapses newlines inside the purpose field to single spaces", func() {
		t := sampleTrip()
		t.Purpose = "Rapat koordinasi\r\nwilayah timur\ndan evaluasi"

		file := export.Export([]*trip.Trip{t}, now)

		Expect(string(file.Content)).To(ContainSubstring(`"Rapat koordinasi wilayah timur dan evaluasi"`))
	})

	It("emits missing amounts as unquoted zeroes", func() {
		t := sampleTrip()
		t.FuelCost = 0
		t.TollCost = 0

		file := export.Export([]*trip.Trip{t}, now)
		content := strings.TrimPrefix(string(file.Content), "\uFEFF")
		row := strings.Split(content, "\n")[1]
		fields := strings.Split(row, ";")

		Expect(fields[9]).To(Equal("0"))
		Expect(fields[10]).To(Equal("0"))
	})

	It("names the file after the id-ID date with dashes, unpadded", func() {
		file := export.Export([]*trip.Trip{sampleTrip()}, now)
		Expect(file.Name).To(Equal("Rekap_Perjalanan_Dinas_7-3-2024.csv"))
		Expect(file.MIMEType).To(Equal("text/csv; charset=utf-8"))
	})

	It("names a double-digit date without extra padding either", func() {
		file := export.Export([]*trip.Trip{sampleTrip()}, time.Date(2024, time.November, 21, 0, 0, 0, 0, time.UTC))
		Expect(file.Name).To(Equal("Rekap_Perjalanan_Dinas_21-11-2024.csv"))
	})
})
