package usecases

// TextSanitizer reduces user-supplied text to plain text.
type TextSanitizer interface {
	PlainText(input string) string
}
