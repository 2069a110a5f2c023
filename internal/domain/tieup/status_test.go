package tieup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw        string
		want       Status
		wire       string
		blocks     bool
		isTerminal bool
	}{
		{"", NotRequested(), "not_requested", false, false},
		{"not_requested", NotRequested(), "not_requested", false, false},
		{"pending", Pending(), "pending", true, false},
		{"accepted", Accepted(), "accepted", true, true},
		{"rejected", Other("rejected"), "rejected", false, true},
	}
	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			got := ParseStatus(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wire, got.String())
			assert.Equal(t, tt.blocks, got.BlocksNewRequest())
			assert.Equal(t, tt.isTerminal, got.IsTerminal())
		})
	}
}

func TestStatus_OtherIsNotConfusedWithNotRequested(t *testing.T) {
	rejected := Other("rejected")
	assert.True(t, rejected.IsOther())
	assert.False(t, rejected.IsNotRequested())
	assert.NotEqual(t, NotRequested(), rejected)
}

func TestStatus_JSON(t *testing.T) {
	payload := struct {
		Status Status `json:"status"`
	}{Status: Pending()}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"pending"}`, string(data))

	var decoded struct {
		Status Status `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"accepted"}`), &decoded))
	assert.True(t, decoded.Status.IsAccepted())

	require.NoError(t, json.Unmarshal([]byte(`{"status":"blocked"}`), &decoded))
	assert.Equal(t, Other("blocked"), decoded.Status)
}
