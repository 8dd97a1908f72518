package problem

import "strings"

func isValidID(id int64) bool {
	return id > 0
}

func isValidDescription(description string) bool {
	return strings.TrimSpace(description) != ""
}
