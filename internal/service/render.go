package service

import (
	"fmt"
	"html"
	"strings"

	"lostfound-backend/models"
)

// NotificationContent is a rendered email, recomputed per request.
type NotificationContent struct {
	Subject string
	HTML    string
}

// RenderNotification builds the subject and HTML body for a found-item match.
// Item fields are user input and get escaped before interpolation.
func RenderNotification(item *models.FoundItem) NotificationContent {
	subject := fmt.Sprintf("Someone found a %s item that may be yours", item.Category)

	var b strings.Builder
	b.WriteString("<h2>Good news!</h2>")
	b.WriteString("<p>An item matching the category of your lost report was just reported found.</p>")
	b.WriteString(fmt.Sprintf("<p><strong>Item:</strong> %s</p>", html.EscapeString(item.Title)))
	b.WriteString(fmt.Sprintf("<p><strong>Category:</strong> %s</p>", html.EscapeString(item.Category)))
	if item.Description != "" {
		b.WriteString(fmt.Sprintf("<p><strong>Description:</strong> %s</p>", html.EscapeString(item.Description)))
	}
	if item.Location != "" {
		b.WriteString(fmt.Sprintf("<p><strong>Found at:</strong> %s</p>", html.EscapeString(item.Location)))
	}
	b.WriteString("<p>Log in to check whether this is your item and get in touch with the finder.</p>")

	return NotificationContent{Subject: subject, HTML: b.String()}
}
