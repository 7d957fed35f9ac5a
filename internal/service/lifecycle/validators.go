package lifecycle

func isValidPackageID(id int64) bool {
	return id > 0
}
