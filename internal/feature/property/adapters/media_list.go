package adapters

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// MediaList stores ordered media URLs. PostgreSQL uses a native text[] column;
// other dialects store the same array literal in a text column.
type MediaList []string

// GormDBDataType selects the column type per dialect.
func (MediaList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Value encodes the list as an array literal. nil is stored as an empty array.
func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		m = MediaList{}
	}
	return pq.StringArray(m).Value()
}

// Scan decodes an array literal.
func (m *MediaList) Scan(src any) error {
	var a pq.StringArray
	if err := a.Scan(src); err != nil {
		return err
	}
	*m = MediaList(a)
	return nil
}
