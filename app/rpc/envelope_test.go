package rpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultShape(t *testing.T) {
	data, err := json.Marshal(NewResult("abc123"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":{"data":"abc123"}}`, string(data))
}

func TestErrorShape(t *testing.T) {
	data, err := json.Marshal(ErrorResponse{Error: ErrorBody{Code: CodeNotFound, Message: "record not found"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"record not found"}}`, string(data))
}

func TestProcedurePath(t *testing.T) {
	assert.Equal(t, "/api/rpc/post.all", ProcedurePath(PostAll))
}
