package helper

import (
	"fmt"
	"strconv"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"

	"gorm.io/gorm"
)

// NextOrderNo reads every stored order number and returns max+1, zero padded
// to at least 3 digits. The first order of a fresh table gets "001".
//
// The read and the later insert are not isolated: two checkouts arriving at
// the same instant can observe the same max and be handed the same number.
// Order numbers are display-only and not unique, so duplicates are tolerated.
func NextOrderNo(db *gorm.DB) (string, error) {
	var existing []string
	if err := db.Model(&model.Order{}).Pluck("order_no", &existing).Error; err != nil {
		return "", err
	}
	return nextOrderNo(existing), nil
}

func nextOrderNo(existing []string) string {
	next := 1
	for _, s := range existing {
		if n, err := strconv.Atoi(s); err == nil && n+1 > next {
			next = n + 1
		}
	}
	return fmt.Sprintf("%03d", next)
}
