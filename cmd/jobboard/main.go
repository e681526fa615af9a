package main

import (
	"os"

	"tekfix_jobboard/pkg/apperrors"

	"github.com/pterm/pterm"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		pterm.Error.Println(appErr.Message)
		if details, ok := appErr.Details.(map[string]interface{}); ok {
			for field, msg := range details {
				pterm.Error.Printf("  %s: %v\n", field, msg)
			}
		}
		return
	}
	pterm.Error.Println(err)
}
