package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Serve the JSON API as an API Gateway proxy Lambda",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := buildApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		// Static files are served by the CDN in front of the function.
		h, err := a.handler("", logger)
		if err != nil {
			return err
		}
		lambda.Start(h.Handle)
		return nil
	},
}
