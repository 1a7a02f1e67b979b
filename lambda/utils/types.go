package utils

// Event is the raw invocation payload. The arange function never reads it.
type Event interface{}

// Response is the envelope handed back to the Lambda runtime.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type SnowflakeArray struct {
	Data [][]int `json:"data"`
}

const ArangeRows = 3
const ArangeCols = 5
