package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"fluxdevs/app/cli/output"
)

func TestPrinter_StreamRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	p := output.NewPrinterWithWriters(&out, &errOut, false)

	p.Info("starting %s", "check")
	p.Success("done")
	p.Warning("slow response")
	p.Error("rejected")
	p.Print("plain line")

	assert.Contains(t, out.String(), "starting check")
	assert.Contains(t, out.String(), "[OK] done")
	assert.Contains(t, out.String(), "plain line")

	assert.Contains(t, errOut.String(), "[WARN] slow response")
	assert.Contains(t, errOut.String(), "[ERROR] rejected")
	assert.NotContains(t, out.String(), "rejected")
}

func TestPrinter_PlainFallbacks(t *testing.T) {
	var out, errOut bytes.Buffer
	p := output.NewPrinterWithWriters(&out, &errOut, false)

	assert.Equal(t, "title", p.Bold("title"))
	assert.Equal(t, "[available]", p.AvailabilityBadge("available"))
	assert.Equal(t, "[taken]", p.AvailabilityBadge("taken"))
	assert.Equal(t, "[checking]", p.AvailabilityBadge("checking"))
}
