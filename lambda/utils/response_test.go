package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArrayResponse(t *testing.T) {
	resp, err := NewArrayResponse([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"data": [[0, 1], [2, 3]]}`, resp.Body)
}

func TestResponseHasOnlyStatusAndBody(t *testing.T) {
	resp, err := NewArrayResponse([][]int{})
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Len(t, envelope, 2)
	assert.Contains(t, envelope, "statusCode")
	assert.Contains(t, envelope, "body")
	assert.JSONEq(t, `{"data": []}`, resp.Body)
}
