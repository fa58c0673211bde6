package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

func TestTimelockFiresOnImmediateRoleChange(t *testing.T) {
	src := `contract Vault {
    address admin;
    function setAdmin(address a) external {
        admin = a;
    }
}`
	fs := evalOn(t, &missingTimelock{}, src)
	require.Len(t, fs, 1)
	assert.Equal(t, model.IssueMultiTxDependency, fs[0].IssueType)
	assert.Equal(t, 3, fs[0].Line)
}

func TestTimelockSuppressedByDelayComparison(t *testing.T) {
	src := `contract Vault {
    address admin;
    function setAdmin(address a) external {
        require(block.timestamp>=proposedAt + DELAY, "too early");
        admin = a;
    }
}`
	assert.Empty(t, evalOn(t, &missingTimelock{}, src))
}

func TestTimelockNeedsSetterAndUsage(t *testing.T) {
	// A setter whose role name is never referenced elsewhere is out of
	// scope for this check.
	src := `contract Vault {
    function setPauser(address p) external {
        store(p);
    }
}`
	assert.Empty(t, evalOn(t, &missingTimelock{}, src))
}
