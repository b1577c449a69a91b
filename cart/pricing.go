package cart

import (
	"sort"
	"strconv"

	"kanael-cafe/models"

	"gorm.io/gorm"
)

// Line is a priced, display-ready projection of one cart entry against the
// current catalog.
type Line struct {
	ID        uint
	Name      string
	Price     float64
	Quantity  int
	LineTotal float64
}

// Price resolves every cart entry against the live catalog and returns the
// priced lines plus the grand total. Entries whose id no longer exists in
// the catalog are dropped without notice, so a total never references a
// deleted item. Lines come back sorted by item id; an empty cart yields no
// lines and a zero total.
func Price(db *gorm.DB, c Cart) ([]Line, float64) {
	if len(c) == 0 {
		return nil, 0
	}

	var lines []Line
	var grandTotal float64
	for idStr, qty := range c {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			continue
		}
		var item models.MenuItem
		if err := db.First(&item, uint(id)).Error; err != nil {
			continue
		}
		lineTotal := item.Price * float64(qty)
		grandTotal += lineTotal
		lines = append(lines, Line{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines, grandTotal
}
