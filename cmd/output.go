package cmd

import (
	"encoding/json"
	"fmt"
)

// printJSON prints v as indented JSON on the standard output.
func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
