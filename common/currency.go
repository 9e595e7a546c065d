package common

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders amount as whole Indonesian Rupiah, e.g. "Rp\u00a01.500.000".
func FormatRupiah(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "Rp\u00a0-"
	}

	rounded := math.Round(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + "Rp\u00a0" + idPrinter.Sprintf("%.0f", rounded)
}
