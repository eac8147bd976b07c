package document

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFRenderWithMissingSignatureAsset(t *testing.T) {
	data := musterRollFixture(30)
	w := NewPDFWriter(data)

	RenderMusterRoll(data, w, "/nonexistent/signature.png")

	var buf bytes.Buffer
	require.NoError(t, w.Save(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPDFRenderWithEmptySignaturePath(t *testing.T) {
	data := musterRollFixture(3)
	w := NewPDFWriter(data)

	RenderMusterRoll(data, w, "")

	var buf bytes.Buffer
	require.NoError(t, w.Save(&buf))
	assert.NotZero(t, buf.Len())
}
