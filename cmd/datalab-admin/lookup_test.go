package main

import (
	"bytes"
	"testing"

	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/datalab-ge/datalab-api/internal/console"
	"github.com/datalab-ge/datalab-api/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPriceFlags(t *testing.T, device, problem, urgency string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevView := app.view
	app.view = console.NewView(&buf, config.DisplayConfig{Locale: "en"})
	flagDevice, flagProblem, flagUrgency = device, problem, urgency
	t.Cleanup(func() {
		app.view = prevView
		flagDevice, flagProblem, flagUrgency = "", "", ""
	})
	return &buf
}

func TestPriceCmd_UrgencyHasNoDefault(t *testing.T) {
	flag := priceCmd.Flags().Lookup("urgency")
	require.NotNil(t, flag)
	assert.Empty(t, flag.DefValue)
}

func TestRunPrice_MissingUrgencyBlocksEstimate(t *testing.T) {
	buf := withPriceFlags(t, "ssd", "water", "")

	err := runPrice(priceCmd, nil)

	assert.ErrorIs(t, err, pricing.ErrIncompleteSelection)
	assert.Empty(t, buf.String())
}

func TestRunPrice_CompleteSelection(t *testing.T) {
	buf := withPriceFlags(t, "ssd", "physical", "urgent")

	require.NoError(t, runPrice(priceCmd, nil))
	assert.Contains(t, buf.String(), "338 ₾")
}
