package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSpec(t *testing.T) *Spec {
	t.Helper()
	return NewSpec(nil)
}

func TestMatchText_TokenNumber(t *testing.T) {
	spec := newTestSpec(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"anchored token", "Provisional Receipt Token Number 097979000012345 issued", "097979000012345"},
		{"bare prefixed token", "ref 097979000012345 attached", "097979000012345"},
		{"generic anchored token", "Token Number 123456789012 issued", "123456789012"},
		{"standalone number", "statement id 123456789012345 follows", "123456789012345"},
		{"no token", "nothing to see here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchText(spec, FieldToken, tt.text))
		})
	}
}

func TestMatchText_PrecedenceAnchoredOverBare(t *testing.T) {
	spec := newTestSpec(t)

	// Both an anchored and a bare TAN-shaped string are present; the
	// anchored one must win even though the bare one comes first.
	text := "WXYZ99999Z some heading TAN ABCD12345E more text"
	assert.Equal(t, "ABCD12345E", matchText(spec, FieldTAN, text))
}

func TestMatchText_DeductorScenario(t *testing.T) {
	spec := newTestSpec(t)

	text := "Token Number 097979000012345 Name of Deductor EXAMPLE REALTORS LLP NA QVZABCDE Date 5 March 2025"
	got := matchText(spec, FieldDeductor, text)
	assert.Equal(t, "EXAMPLE REALTORS LLP", CleanDeductorName(got))

	assert.Equal(t, "QVZABCDE", matchText(spec, FieldReceipt, text))
}

func TestMatchText_RemainingFields(t *testing.T) {
	spec := newTestSpec(t)
	text := "Form No 26Q Type of Statement Regular Financial Year 2024-25 Periodicity Q4 " +
		"Total (Rounded off) (₹) 59.00 Date 5 March 2025 TAN ABCD12345E"

	assert.Equal(t, "26Q", matchText(spec, FieldFormNo, text))
	assert.Equal(t, "Regular", matchText(spec, FieldStatement, text))
	assert.Equal(t, "2024-25", matchText(spec, FieldFY, text))
	assert.Equal(t, "Q4", matchText(spec, FieldPeriodicity, text))
	assert.Equal(t, "59.00", matchText(spec, FieldTotal, text))
	assert.Equal(t, "5 March 2025", matchText(spec, FieldDate, text))
	assert.Equal(t, "ABCD12345E", matchText(spec, FieldTAN, text))
}
