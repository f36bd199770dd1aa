package ledger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/paypalbean/internal/model"
)

func TestReadUUIDs(t *testing.T) {
	text := `option "title" "Books"

2025-09-15 * "Sender Doe" "Service payment"
  uuid: "3C456789DE012345F"
  sender: "sender@example.com"
  Assets:PayPal  97.10 USD

; 2025-09-22 * "Jane Smith" "Premium Subscription"
;   uuid: "COMMENTED"

2025-09-22 * "Jane Smith" "Premium Subscription"
    uuid:"4D567890EF123456G"
  Assets:PayPal  -75.00 USD
uuid: "NOT-INDENTED"
`
	got, err := ReadUUIDs(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"3C456789DE012345F": true,
		"4D567890EF123456G": true,
	}, got)
}

func TestReadUUIDs_RoundTripsWriter(t *testing.T) {
	txn := deposit()
	txn.Meta = model.Meta{{Key: "uuid", Value: `odd "id" \ here`}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []model.Entry{txn}))

	got, err := ReadUUIDs(&buf)
	require.NoError(t, err)
	assert.True(t, got[`odd "id" \ here`])
}

func TestLoadUUIDs(t *testing.T) {
	dir := t.TempDir()

	got, err := LoadUUIDs(filepath.Join(dir, "missing.beancount"))
	require.NoError(t, err)
	assert.Empty(t, got)

	path := filepath.Join(dir, "main.beancount")
	require.NoError(t, os.WriteFile(path, []byte("2025-01-01 * \"a\" \"b\"\n  uuid: \"X1\"\n"), 0o644))
	got, err = LoadUUIDs(path)
	require.NoError(t, err)
	assert.True(t, got["X1"])
}
