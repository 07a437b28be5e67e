package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		data string
		want action
	}{
		{data: "noop", want: action{kind: actionNoop}},
		{data: "checkout:open", want: action{kind: actionCheckoutOpen}},
		{data: "checkout:cancel", want: action{kind: actionCheckoutCancel}},
		{data: "checkout:submit", want: action{kind: actionCheckoutSubmit}},
		{data: stageData("casa", -1), want: action{kind: actionStage, productID: "casa", delta: -1}},
		{data: itemData("titi", 1), want: action{kind: actionItem, productID: "titi", delta: 1}},
		{data: addData("premium"), want: action{kind: actionAdd, productID: "premium"}},
		{data: modeData("delivery"), want: action{kind: actionMode, mode: "delivery"}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := parseAction(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseActionRejectsMalformed(t *testing.T) {
	for _, data := range []string{"", "stage:casa", "stage:casa:x", "item::1", "stage:casa:0", "add:", "other:1"} {
		_, err := parseAction(data)
		assert.Error(t, err, data)
	}
}
