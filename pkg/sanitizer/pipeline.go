package sanitizer

// Compose chains transforms into a reusable cleaning step, applied left to right.
func Compose(transforms ...func(string) string) func(string) string {
	return func(value string) string {
		for _, transform := range transforms {
			value = transform(value)
		}
		return value
	}
}
