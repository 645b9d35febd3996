package utils

func Int64Ptr(i int64) *int64 {
	return &i
}

func PtrInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
