package delivery

func isValidID(id int64) bool {
	return id > 0
}
