package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func NewArrayResponse(rows [][]int) (Response, error) {
	bytes, err := json.Marshal(SnowflakeArray{Data: rows})
	if err != nil {
		return Response{}, fmt.Errorf("failed to serialize array: %w", err)
	}
	return Response{
		StatusCode: http.StatusOK,
		Body:       string(bytes),
	}, nil
}
