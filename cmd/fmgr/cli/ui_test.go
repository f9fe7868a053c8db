package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Success("done")
	p.Info("note")
	p.Warning("careful")
	p.Error("broken")
	p.Hint("try again")

	assert.Contains(t, out.String(), "✅ done")
	assert.Contains(t, out.String(), "note")
	assert.Contains(t, out.String(), "careful")
	assert.NotContains(t, out.String(), "broken")

	assert.Contains(t, errOut.String(), "❌ broken")
	assert.Contains(t, errOut.String(), "try again\n")
}

func TestPrinterEntry(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out)

	p.Entry("📄", "a.txt", "")
	p.Entry("📄", "b.txt", "3 B")
	p.Plain("raw")

	lines := out.String()
	assert.Contains(t, lines, "  📄 a.txt\n")
	assert.Contains(t, lines, "  📄 b.txt  ")
	assert.Contains(t, lines, "3 B")
	assert.Contains(t, lines, "raw\n")
}
