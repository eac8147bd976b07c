package document

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/shramsetu/rozgar-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records layout calls; its page "fills up" after a fixed
// number of rows so pagination can be observed without a real PDF.
type fakeWriter struct {
	rowsPerPage int
	pages       int
	rowsOnPage  int
	rows        [][]string
	shading     []bool
	summaries   int
	summaryPage int
	signatures  []string
}

func (f *fakeWriter) NewPage() {
	f.pages++
	f.rowsOnPage = 0
}

func (f *fakeWriter) AppendRow(cells []string, shaded bool) {
	f.rows = append(f.rows, cells)
	f.shading = append(f.shading, shaded)
	f.rowsOnPage++
}

func (f *fakeWriter) AppendSummary(summary report.Summary, generatedAt string) {
	f.summaries++
	f.summaryPage = f.pages
}

func (f *fakeWriter) SignatureStamp(path string) {
	f.signatures = append(f.signatures, path)
}

func (f *fakeWriter) RemainingHeight() float64 {
	return float64(f.rowsPerPage-f.rowsOnPage) * breakThreshold
}

func (f *fakeWriter) Save(w io.Writer) error { return nil }

func musterRollFixture(n int) report.MusterRollData {
	data := report.MusterRollData{
		ProjectName: "Pond Desilting",
		Location:    "Rampur GP",
		Date:        "2026-03-10",
		GeneratedAt: "2026-03-10 18:00:00",
		Summary:     report.Summary{TotalWorkers: n, Present: n, AttendanceRate: 100},
	}
	for i := 0; i < n; i++ {
		data.Rows = append(data.Rows, report.Row{
			WorkerName:  fmt.Sprintf("Worker %02d", i),
			JobCardID:   fmt.Sprintf("UP-05-001-002/%d", i),
			ProjectName: data.ProjectName,
			Date:        data.Date,
			Attendance:  "PRESENT",
			MarkedBy:    "Anil Sharma",
			Time:        "09:30",
		})
	}
	return data
}

func TestTruncateCell(t *testing.T) {
	assert.Equal(t, "short", TruncateCell("short", 25))
	assert.Equal(t, strings.Repeat("x", 25), TruncateCell(strings.Repeat("x", 25), 25))

	long := strings.Repeat("x", 26)
	got := TruncateCell(long, 25)
	assert.Equal(t, strings.Repeat("x", 22)+"...", got)
	assert.Len(t, []rune(got), 25)
}

func TestTruncateCellRuneSafe(t *testing.T) {
	name := strings.Repeat("र", 30) // Devanagari
	got := TruncateCell(name, 25)
	assert.Equal(t, strings.Repeat("र", 22)+"...", got)
}

func TestRenderEmitsOneRowPerRosterWorker(t *testing.T) {
	data := musterRollFixture(7)
	w := &fakeWriter{rowsPerPage: 100}

	RenderMusterRoll(data, w, "")

	require.Len(t, w.rows, 7)
	assert.Equal(t, 1, w.pages)
	assert.Equal(t, 1, w.summaries)
	assert.Equal(t, []string{""}, w.signatures)
}

func TestRenderAlternatesShading(t *testing.T) {
	data := musterRollFixture(4)
	w := &fakeWriter{rowsPerPage: 100}

	RenderMusterRoll(data, w, "")

	assert.Equal(t, []bool{false, true, false, true}, w.shading)
}

func TestRenderBreaksPages(t *testing.T) {
	data := musterRollFixture(25)
	w := &fakeWriter{rowsPerPage: 10}

	RenderMusterRoll(data, w, "/tmp/signature.png")

	assert.Len(t, w.rows, 25)
	assert.GreaterOrEqual(t, w.pages, 3)
	assert.Equal(t, 1, w.summaries)
}

func TestRenderSummaryMovesToFreshPageWhenRowSpaceRemains(t *testing.T) {
	// Nine rows leave room for one more row but not for the taller
	// summary block, so the summary must start a new page.
	data := musterRollFixture(9)
	w := &fakeWriter{rowsPerPage: 10}

	RenderMusterRoll(data, w, "")

	assert.Equal(t, 2, w.pages)
	assert.Equal(t, 2, w.summaryPage)
	assert.Len(t, w.rows, 9)
}

func TestRenderTruncatesLongCells(t *testing.T) {
	data := musterRollFixture(1)
	data.Rows[0].WorkerName = strings.Repeat("a", 40)
	data.Rows[0].JobCardID = strings.Repeat("b", 30)
	data.Rows[0].MarkedBy = strings.Repeat("c", 20)
	w := &fakeWriter{rowsPerPage: 100}

	RenderMusterRoll(data, w, "")

	row := w.rows[0]
	assert.Equal(t, strings.Repeat("a", 22)+"...", row[0])
	assert.Equal(t, strings.Repeat("b", 15)+"...", row[1])
	assert.Equal(t, strings.Repeat("c", 12)+"...", row[4])
	// date, status and time pass through untouched
	assert.Equal(t, "2026-03-10", row[2])
	assert.Equal(t, "PRESENT", row[3])
	assert.Equal(t, "09:30", row[5])
}

func TestRenderEmptyRoster(t *testing.T) {
	data := musterRollFixture(0)
	w := &fakeWriter{rowsPerPage: 100}

	RenderMusterRoll(data, w, "")

	assert.Empty(t, w.rows)
	assert.Equal(t, 1, w.pages)
	assert.Equal(t, 1, w.summaries)
}
