// Package responsive turns fixed-size iframe embeds into fluid,
// aspect-ratio-preserving containers. The transformation is purely
// textual and works on markup fragments, not full documents.
package responsive

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// iframeOpenPattern matches the opening of an iframe tag, case-insensitively.
var iframeOpenPattern = regexp.MustCompile(`(?i)<iframe`)

const iframeStyle = ` style="position:absolute;top:0;left:0;width:100%;height:100%;"`

// Wrap converts embed markup into a responsive container that reserves
// vertical space with padding-bottom derived from the aspect ratio.
// An unknown (zero) ratio falls back to defaultRatio.
func Wrap(markup string, aspectRatio, defaultRatio float64) string {
	ratio := aspectRatio
	if ratio == 0 {
		ratio = defaultRatio
	}
	if ratio <= 0 {
		return markup
	}

	padding := PaddingPercent(ratio)

	styled := iframeOpenPattern.ReplaceAllStringFunc(markup, func(tag string) string {
		return tag + iframeStyle
	})

	return fmt.Sprintf(
		`<div style="position:relative;padding-bottom:%s%%;height:0;overflow:hidden;">%s</div>`,
		strconv.FormatFloat(padding, 'f', 2, 64), styled,
	)
}

// PaddingPercent computes (1/ratio)*100 rounded to two decimal places.
func PaddingPercent(ratio float64) float64 {
	return math.Round(100/ratio*100) / 100
}
