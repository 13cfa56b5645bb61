package model

import (
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
)

func TestNegativeData_IsEmpty(t *testing.T) {
	assert.True(t, NegativeData{}.IsEmpty())
	assert.True(t, NegativeData{Status: FetchFailed}.IsEmpty())
	assert.False(t, NegativeData{Social: []string{"meh"}}.IsEmpty())
}

func TestNegativeData_Digest(t *testing.T) {
	d := NegativeData{
		Reviews: []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"},
		Social:  []string{"s1"},
	}

	got := d.Digest()

	assert.Equal(t, "NEGATIVE REVIEWS:\nr1\nr2\nr3\nr4\nr5\n\nNEGATIVE SOCIAL MEDIA:\ns1", got)
	assert.NotContains(t, got, "r6")
	assert.NotContains(t, got, "REDDIT")
}

func TestNegativeData_DigestEmpty(t *testing.T) {
	assert.Equal(t, "", NegativeData{}.Digest())
}

func TestIntent_Known(t *testing.T) {
	for _, i := range Intents {
		assert.True(t, i.Known(), i.String())
	}
	assert.False(t, Intent("order_pizza").Known())
	assert.False(t, Intent("").Known())
}

func TestComputeCost(t *testing.T) {
	usage := &schema.TokenUsage{PromptTokens: 1_000_000, CompletionTokens: 500_000}

	in, out, total := ComputeCost(usage, ResolvePricing("gemini-2.5-flash"))

	assert.InDelta(t, 0.30, in, 1e-9)
	assert.InDelta(t, 1.25, out, 1e-9)
	assert.InDelta(t, 1.55, total, 1e-9)

	_, _, zero := ComputeCost(nil, ResolvePricing("gemini-2.5-flash"))
	assert.Zero(t, zero)
	assert.Equal(t, Pricing{}, ResolvePricing("unknown-model"))
}
