package dashboard

// NoticeLevel selects how a notice is rendered.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeError
)

// Notice is a blocking, user-visible message that stays up until dismissed.
type Notice struct {
	Level  NoticeLevel
	Title  string
	Text   string
	Detail string // underlying error, if any
}

// User-facing notice copy.
const (
	searchFailedText    = "Job search failed. Please try again."
	runNowDoneText      = "Manual job search completed! Check your email for results."
	runNowFailedText    = "Manual job search failed."
	testEmailDoneText   = "Test email sent successfully!"
	testEmailFailedText = "Failed to send test email."
)

func errorNotice(title, text string, err error) Notice {
	n := Notice{Level: NoticeError, Title: title, Text: text}
	if err != nil {
		n.Detail = err.Error()
	}
	return n
}
