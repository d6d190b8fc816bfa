package loans

import "github.com/cleared-dev/ladder/internal/model"

// Book provides in-memory lookup over a batch of loan records.
type Book struct {
	records   []model.LoanRecord
	byAccount map[string]int
}

// NewBook indexes records by account id. When an account appears more than
// once, the first record wins.
func NewBook(records []model.LoanRecord) *Book {
	byAccount := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := byAccount[r.AccountID]; !ok {
			byAccount[r.AccountID] = i
		}
	}
	return &Book{records: records, byAccount: byAccount}
}

// All returns every record in input order.
func (b *Book) All() []model.LoanRecord {
	return b.records
}

// Get returns the record for an account id.
func (b *Book) Get(accountID string) (model.LoanRecord, bool) {
	i, ok := b.byAccount[accountID]
	if !ok {
		return model.LoanRecord{}, false
	}
	return b.records[i], true
}

// Len reports the number of records.
func (b *Book) Len() int {
	return len(b.records)
}
