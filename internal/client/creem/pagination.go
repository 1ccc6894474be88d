package creem

import (
	"net/url"
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

const (
	paramPageNumber = "page_number"
	paramPageSize   = "page_size"
)

func pageValues(pageKey string, sizeKey string, page int, size int) url.Values {
	if page <= 0 {
		page = defaultPage
	}
	if size <= 0 {
		size = defaultPageSize
	}

	v := make(url.Values)
	v.Set(pageKey, strconv.Itoa(page))
	v.Set(sizeKey, strconv.Itoa(size))
	return v
}
