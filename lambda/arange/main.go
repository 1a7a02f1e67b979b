package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/palette-software/go-log-targets"
	"github.com/starschema/snowflake-arange-function/lambda/utils"
)

// Arange answers every invocation with the 3x5 array 0..14. The event is ignored.
func Arange(ctx context.Context, event utils.Event) (utils.Response, error) {
	requestID := "local"
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}
	log.Debugf("Building arange response for request %s", requestID)

	rows, err := utils.Reshape(utils.Arange(utils.ArangeRows*utils.ArangeCols), utils.ArangeRows, utils.ArangeCols)
	if err != nil {
		log.Errorf("Failed to reshape array: %v", err)
		return utils.Response{}, err
	}
	resp, err := utils.NewArrayResponse(rows)
	if err != nil {
		log.Errorf("Failed to create response: %v", err)
		return utils.Response{}, err
	}
	return resp, nil
}

func main() {
	log.AddTarget(os.Stdout, log.LevelDebug)
	lambda.Start(Arange)
}
