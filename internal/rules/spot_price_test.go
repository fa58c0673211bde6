package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

func TestSpotPriceReportsMatchingLine(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "// filler"
	}
	lines[9] = "(uint112 r0, uint112 r1,) = pair.getReserves();"
	src := strings.Join(lines, "\n")

	fs := evalOn(t, &spotPriceOracle{}, src)
	require.Len(t, fs, 1)
	assert.Equal(t, model.IssueSpotPrice, fs[0].IssueType)
	assert.Equal(t, 10, fs[0].Line)
}

func TestSpotPriceExemptionSuppressesWholeFile(t *testing.T) {
	src := `contract TWAPFeed is PriceOracle {
    function refresh() external {
        (uint112 r0, uint112 r1,) = pair.getReserves();
        last = pool.balanceOf();
    }
}`
	assert.Empty(t, evalOn(t, &spotPriceOracle{}, src))
}

func TestSpotPriceMultipleLines(t *testing.T) {
	src := "a.balanceOf()\nb.token0()\n"
	fs := evalOn(t, &spotPriceOracle{}, src)
	assert.Len(t, fs, 2)
}
