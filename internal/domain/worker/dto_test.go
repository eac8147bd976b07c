package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNormalizeFallbackChain(t *testing.T) {
	w := Worker{ID: "w1", Name: "Ramesh Kumar", JobCardID: strPtr("UP-05-001-002/123"), Skill: strPtr("mason")}
	resp := Normalize(w, nil)
	assert.Equal(t, "UP-05-001-002/123", resp.JobCardID)
	assert.Equal(t, "mason", resp.Skill)

	w = Worker{ID: "w2", Name: "Sita Devi"}
	details := map[string]Worker{
		"w2": {ID: "w2", JobCardID: strPtr("UP-05-001-002/456"), Skill: strPtr("labourer")},
	}
	resp = Normalize(w, details)
	assert.Equal(t, "UP-05-001-002/456", resp.JobCardID)
	assert.Equal(t, "labourer", resp.Skill)

	w = Worker{ID: "w3", Name: "Mohan Lal", JobCardID: strPtr("")}
	resp = Normalize(w, map[string]Worker{})
	assert.Equal(t, "N/A", resp.JobCardID)
	assert.Equal(t, "N/A", resp.Skill)
}
