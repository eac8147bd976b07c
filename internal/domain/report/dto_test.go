package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	data := MusterRollData{ProjectName: "Pond Desilting", Date: "2026-03-10"}
	assert.Equal(t, "Pond-Desilting_Attendance_2026-03-10.pdf", data.Filename("pdf"))
	assert.Equal(t, "Pond-Desilting_Attendance_2026-03-10.xlsx", data.Filename("xlsx"))
}

func TestFilenameFlattensSpaces(t *testing.T) {
	data := MusterRollData{ProjectName: "  Rural Road Repair Phase 2 ", Date: "2026-03-10"}
	assert.Equal(t, "Rural-Road-Repair-Phase-2_Attendance_2026-03-10.pdf", data.Filename("pdf"))
}

func TestMusterRollRequestValidate(t *testing.T) {
	req := MusterRollRequest{ProjectID: "p1", Date: "2026-03-10"}
	assert.NoError(t, req.Validate())

	req = MusterRollRequest{Date: "2026-03-10"}
	assert.Error(t, req.Validate())

	req = MusterRollRequest{ProjectID: "p1", Date: "10/03/2026"}
	assert.Error(t, req.Validate())
}
