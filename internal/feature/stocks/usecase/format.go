package usecase

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatLargeNumber は時価総額や出来高を表示用の文字列に整形します。
// 1e12 以上は "T"、1e9 以上は "B"、1e6 以上は "M" を小数2桁で付け、
// それ未満は小数3桁に丸めて3桁区切りにします。
func FormatLargeNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	default:
		return humanize.Commaf(math.Round(v*1000) / 1000)
	}
}

// FormatPercentage は騰落率を小数2桁の百分率に整形します。0以上には "+" を付けます。
func FormatPercentage(v float64) string {
	s := fmt.Sprintf("%.2f%%", v)
	if v >= 0 {
		return "+" + s
	}
	return s
}
