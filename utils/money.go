package utils

import "fmt"

// FormatCents แปลงเงินหน่วย cents เป็น string ทศนิยม 2 ตำแหน่ง เช่น 1783 -> "17.83"
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
