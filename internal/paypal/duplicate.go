package paypal

import "github.com/cleared-dev/paypalbean/internal/model"

// UUIDKey is the metadata key holding the PayPal transaction id.
const UUIDKey = "uuid"

// MarkDuplicates flags transactions whose uuid is in existing and returns
// how many were flagged.
func MarkDuplicates(entries []model.Entry, existing map[string]bool) int {
	if len(existing) == 0 {
		return 0
	}
	n := 0
	for _, e := range entries {
		txn, ok := e.(*model.Transaction)
		if !ok {
			continue
		}
		id, ok := txn.Meta.Get(UUIDKey)
		if ok && id != "" && existing[id] {
			txn.Duplicate = true
			n++
		}
	}
	return n
}
