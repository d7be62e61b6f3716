package notify

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"
)

// Message: письмо кандидату.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

const (
	statusInterview = "INTERVIEW"
	statusRejected  = "REJECTED"

	signature = "<p>Best regards,<br>Recruitment team</p>"
)

// BuildStatusMessage renders the email sent after an application status change.
// jobTitle may be empty; note is free text from the recruiter.
func BuildStatusMessage(to, fullName, jobTitle, status string, interviewAt *time.Time, note string) Message {
	if strings.TrimSpace(jobTitle) == "" {
		jobTitle = "your application"
	}
	name := html.EscapeString(fullName)
	title := html.EscapeString(jobTitle)
	note = strings.TrimSpace(note)

	var b strings.Builder
	var subject string
	fmt.Fprintf(&b, "<p>Hello %s,</p>", name)

	switch status {
	case statusInterview:
		subject = "Interview scheduled for " + jobTitle
		fmt.Fprintf(&b, "<p>Your application for the position <strong>%s</strong> has been selected for an interview.</p>", title)
		if interviewAt != nil {
			fmt.Fprintf(&b, "<p>The interview is scheduled on <strong>%s</strong>.</p>", interviewAt.Format("02/01/2006 15:04"))
		}
		if note != "" {
			b.WriteString("<p><strong>Additional message:</strong><br>" + nl2br(note) + "</p>")
		}
		b.WriteString(signature)
	case statusRejected:
		subject = "Your application for " + jobTitle
		fmt.Fprintf(&b, "<p>We are sorry to inform you that your application for the position <strong>%s</strong> has not been retained.</p>", title)
		if note != "" {
			b.WriteString("<p><strong>Message from recruiter:</strong><br>" + nl2br(note) + "</p>")
		}
		b.WriteString("<p>We thank you for your interest and wish you all the best in your future applications.</p>")
		b.WriteString(signature)
	default:
		subject = "Update about your application for " + jobTitle
		if note != "" {
			b.WriteString("<p>" + nl2br(note) + "</p>")
		} else {
			fmt.Fprintf(&b, "<p>Your application status has been updated: <strong>%s</strong>.</p>", html.EscapeString(status))
		}
		b.WriteString(signature)
	}

	return Message{To: to, Subject: subject, HTML: b.String()}
}

func nl2br(s string) string {
	s = html.EscapeString(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>\n")
}
