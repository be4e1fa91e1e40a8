package textdecode_test

import (
	"testing"

	"github.com/SscSPs/tax_ledger_app/internal/utils/textdecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestDecode_Windows1251(t *testing.T) {
	raw, err := charmap.Windows1251.NewEncoder().String("СекцияДокумент=Платежное поручение")
	require.NoError(t, err)

	text, err := textdecode.Decode([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "СекцияДокумент=Платежное поручение", text)
}

func TestDecode_UTF8PassesThrough(t *testing.T) {
	text, err := textdecode.Decode([]byte("\xEF\xBB\xBF1CClientBankExchange\nДата=01.01.2024"))
	require.NoError(t, err)
	assert.Equal(t, "1CClientBankExchange\nДата=01.01.2024", text)
}
