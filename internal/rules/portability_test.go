package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

func TestPortabilityLineRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "chainid opcode", line: "uint256 id = chainid();", want: model.IssueChainAssumption},
		{name: "msg.value", line: "require(msg.value > 0);", want: model.IssueNativeToken},
		{name: "balance introspection", line: "uint256 b = address(this).balance;", want: model.IssueNativeToken},
		{name: "hardcoded gas stipend", line: "target.call{gas: 2300}(data);", want: model.IssueHardcodedGas},
	}
	d := newPortability(DefaultRegistries())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := evalOn(t, d, tt.line)
			require.Len(t, fs, 1)
			assert.Equal(t, tt.want, fs[0].IssueType)
			assert.Equal(t, 1, fs[0].Line)
		})
	}
}

func TestPortabilityAddressBookCaseInsensitive(t *testing.T) {
	d := newPortability(DefaultRegistries())
	line := "router = IJoeRouter(" + strings.ToLower("0x60aE616a2155Ee3d9A68541Ba4544862310933d4") + ");"
	fs := evalOn(t, d, line)
	require.Len(t, fs, 1)
	assert.Equal(t, model.IssueCChainDependency, fs[0].IssueType)
	assert.Contains(t, fs[0].Description, "Trader Joe V2 Router")
}

func TestPortabilityChecksAreIndependent(t *testing.T) {
	// One line can raise several independent findings.
	fs := evalOn(t, newPortability(DefaultRegistries()), "payable(msg.sender).call{gas: 2300}(abi.encode(msg.value));")
	assert.Len(t, fs, 2)
}

func TestPortabilitySyntheticRegistry(t *testing.T) {
	reg := Registries{CChainAddresses: []AddressEntry{{Address: "0xBEEF", Name: "Synthetic Protocol"}}}
	fs := evalOn(t, newPortability(reg), "x = 0xbeef;")
	require.Len(t, fs, 1)
	assert.Contains(t, fs[0].Description, "Synthetic Protocol")
}
