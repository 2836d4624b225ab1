package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDeductorName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "EXAMPLE REALTORS LLP", "EXAMPLE REALTORS LLP"},
		{"receipt tail stripped", "EXAMPLE REALTORS LLP NA QVZABCDE", "EXAMPLE REALTORS LLP"},
		{"label noise stripped", "Token Number EXAMPLE INFRA PVT LTD", "EXAMPLE INFRA PVT LTD"},
		{"collector noise stripped", "Deductor/Collector ACME ASSOCIATES", "ACME ASSOCIATES"},
		{"quoted label stripped", "ACME ASSOCIATES be quoted on TDS", "ACME ASSOCIATES"},
		{"trailing digits stripped", "ACME ASSOCIATES 12345", "ACME ASSOCIATES"},
		{"whitespace collapsed", "ACME    ASSOCIATES\t LLP", "ACME ASSOCIATES LLP"},
		{"too short rejected", "AB", ""},
		{"blacklist zero", "0", ""},
		{"blacklist na", "NA", ""},
		{"blacklist none", "None", ""},
		{"empty rejected", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDeductorName(tt.in))
		})
	}
}

func TestCleanDeductorName_Idempotent(t *testing.T) {
	names := []string{
		"EXAMPLE REALTORS LLP",
		"ACME INFRA PVT LTD",
		"A B C TRADERS & SONS",
	}
	for _, name := range names {
		once := CleanDeductorName(name)
		twice := CleanDeductorName(once)
		assert.Equal(t, once, twice, "cleaning must be idempotent for %q", name)
	}
}

func TestCleanDeductorName_TooLong(t *testing.T) {
	long := make([]byte, 120)
	for i := range long {
		long[i] = 'A'
	}
	assert.Empty(t, CleanDeductorName(string(long)))
}
